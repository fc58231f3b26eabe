package explorer

// Metadata describes a folder or a file.
// Name is the display label and the identity of an open buffer.
type Metadata struct {
	Name  string
	Extra any
}

// File is an immutable leaf document.
type File struct {
	Content  string
	Metadata Metadata
}

func NewFile(name, content string) *File {
	return &File{
		Content:  content,
		Metadata: Metadata{Name: name},
	}
}

func (f *File) Name() string {
	if f == nil {
		return ""
	}
	return f.Metadata.Name
}

// Folder is a node of a strict tree: no cycles and no shared children.
type Folder struct {
	Metadata   Metadata
	SubFolders []*Folder
	Files      []*File
}

func NewFolder(name string, subFolders []*Folder, files ...*File) *Folder {
	return &Folder{
		Metadata:   Metadata{Name: name},
		SubFolders: subFolders,
		Files:      files,
	}
}

func (f *Folder) Name() string {
	if f == nil {
		return ""
	}
	return f.Metadata.Name
}

func (f *Folder) HasChildren() bool {
	return f != nil && (len(f.SubFolders) > 0 || len(f.Files) > 0)
}
