package vtree

// CreateRequest describes a single node to be created. It is what the shell
// builds from mkdir/creat and what every persisted record decodes into.
type CreateRequest struct {
	Path string
	Kind Kind
}

// NewDirRequest returns a request to create a directory at path
func NewDirRequest(path string) CreateRequest {
	return CreateRequest{Path: path, Kind: Directory}
}

// NewFileRequest returns a request to create a file at path
func NewFileRequest(path string) CreateRequest {
	return CreateRequest{Path: path, Kind: File}
}
