package project

// Project is a single candidate directory under the projects root. The
// absolute path doubles as the identity: sibling directories cannot share a
// name, and the frecency store correlates visits by path across listings.
type Project struct {
	ID   string
	Name string
	Path string
}
