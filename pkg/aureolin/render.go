package aureolin

// Element is the renderable-view contract. When a handler returns a value
// implementing Element, the dispatcher renders it to markup and the response
// is written with a text/html content type instead of JSON.
type Element interface {
	Render() (string, error)
}

// Renderer decides whether a handler return value is a renderable element
// and, if so, produces its markup. It reports ok=false for ordinary values,
// which are JSON-encoded as-is.
type Renderer func(v any) (markup string, ok bool, err error)

// DefaultRenderer recognizes values implementing Element.
func DefaultRenderer(v any) (string, bool, error) {
	el, ok := v.(Element)
	if !ok {
		return "", false, nil
	}
	markup, err := el.Render()
	return markup, true, err
}
