// Package aureolin is a thin controller/route registration layer on top of an
// existing HTTP router. Controllers and endpoints are declared through a
// builder API that populates three in-memory stores (endpoints, parameter
// bindings, middleware); route assembly consumes the stores once at startup
// to wire concrete routes, and per-request dispatch extracts handler
// arguments from the declared bindings.
//
// Declaration:
//
//	app := aureolin.New(nil, adapters.NewEchoRouter())
//	app.Controller("/users", &UserController{}).
//	    Get("/{id:int}", "GetUser", aureolin.Param(0, "id")).
//	    Post("/", "CreateUser", aureolin.Body(0))
//	app.Use(&AuthMiddleware{})
//	app.Listen(8080, nil)
//
// Registration is single-threaded and runs to completion before the server
// accepts requests; the stores are frozen from then on.
package aureolin
