package adapters

import (
	"github.com/fossabot/Aureolin/pkg/aureolin"
)

// Shared fixtures for the adapter integration tests.

type createUserRequest struct {
	Name string `json:"name"`
}

type userController struct{}

func (c *userController) GetUser(id int) (map[string]any, error) {
	if id == 0 {
		return nil, aureolin.ErrNotFound("user not found")
	}
	return map[string]any{"id": id}, nil
}

func (c *userController) CreateUser(req createUserRequest) (*aureolin.Response, error) {
	return aureolin.Created(map[string]string{"name": req.Name}), nil
}

func (c *userController) Search(name string, agent string) map[string]string {
	return map[string]string{"name": name, "agent": agent}
}

type homePage struct{}

func (p homePage) Render() (string, error) { return "<h1>welcome</h1>", nil }

func (c *userController) Home() homePage {
	return homePage{}
}

type tagMiddleware struct {
	header string
	value  string
}

func (m *tagMiddleware) Handle(next aureolin.HandlerFunc) aureolin.HandlerFunc {
	return func(ctx aureolin.Context) error {
		ctx.SetHeader(m.header, m.value)
		return next(ctx)
	}
}

func testConfig() *aureolin.Config {
	cfg := aureolin.DefaultConfig()
	cfg.Logger.Enabled = false
	cfg.Logger.Color = false
	return cfg
}

func declareRoutes(app *aureolin.App) {
	app.Controller("/users", &userController{}).
		Get("/{id:int}", "GetUser", aureolin.Param(0, "id")).
		Post("/", "CreateUser", aureolin.Body(0)).
		Get("/search", "Search",
			aureolin.Query(0, "name"),
			aureolin.Header(1, "X-Agent"),
		).
		Get("/home", "Home")
}
