package webcams

// Format is the output format requested on every call.
const Format = "json"

// Mandatory query parameter names.
const (
	ParamFormat = "format"
	ParamDevID  = "devid"
	ParamMethod = "method"
)

// Query is the typed form of an outgoing request's parameters: the three
// mandatory fields plus the operation's own parameters in Extra.
type Query struct {
	Format string
	DevID  string
	Method string
	Extra  *Params
}

// Params returns the merged parameter mapping. The mandatory fields come
// first; any of them also present in Extra take Extra's value.
func (q Query) Params() *Params {
	params := NewParams().
		Set(ParamFormat, q.Format).
		Set(ParamDevID, q.DevID).
		Set(ParamMethod, q.Method)
	return params.Merge(q.Extra)
}

// Encode renders the query string
func (q Query) Encode() string {
	return q.Params().Encode()
}

// BuildQuery renders the query string for method with the given developer
// ID and operation parameters. It never fails and has no side effects.
func BuildQuery(devID, method string, params *Params) string {
	return Query{
		Format: Format,
		DevID:  devID,
		Method: method,
		Extra:  params,
	}.Encode()
}
