package requests

type QueryParams struct {
	Search string
}
