package explorer

import "strconv"

type RowKind int

const (
	FolderRow RowKind = iota
	FileRow
)

// Row is one visible line of the directory tree.
type Row struct {
	Kind     RowKind
	Path     NodePath // the folder itself for FolderRow, the parent folder for FileRow
	Index    int      // file index within the parent, -1 for folders
	Depth    int
	Expanded bool
	Folder   *Folder
	File     *File
}

func (r Row) Name() string {
	if r.Kind == FileRow {
		return r.File.Name()
	}
	return r.Folder.Name()
}

// Key identifies the row by structural position.
func (r Row) Key() string {
	if r.Kind == FileRow {
		return r.Path.Key() + "#" + strconv.Itoa(r.Index)
	}
	return r.Path.Key()
}

// VisibleRows lists the rows shown for the given expand state:
// a folder header, then (when expanded) its subfolders followed by its files.
func VisibleRows(root *Folder, state *ExpandState) []Row {
	if root == nil {
		return nil
	}
	var rows []Row
	appendFolderRows(&rows, root, nil, state)
	return rows
}

func appendFolderRows(rows *[]Row, folder *Folder, p NodePath, state *ExpandState) {
	expanded := state.IsExpanded(p)
	*rows = append(*rows, Row{
		Kind:     FolderRow,
		Path:     p,
		Index:    -1,
		Depth:    p.Depth(),
		Expanded: expanded,
		Folder:   folder,
	})
	if !expanded {
		return
	}
	for i, sub := range folder.SubFolders {
		appendFolderRows(rows, sub, p.Child(i), state)
	}
	for i, file := range folder.Files {
		*rows = append(*rows, Row{
			Kind:   FileRow,
			Path:   p,
			Index:  i,
			Depth:  p.Depth() + 1,
			Folder: folder,
			File:   file,
		})
	}
}

