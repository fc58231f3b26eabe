package explorer

// DemoTree builds the seed tree the app starts with when no fixture is given.
// A fresh value is returned on every call.
func DemoTree() *Folder {
	return NewFolder("Root Folder",
		[]*Folder{
			NewFolder("SubFolder 1", nil,
				NewFile("Document 1", "Document 1"),
			),
			NewFolder("SubFolder 2",
				[]*Folder{
					NewFolder("Nested SubFolder", nil,
						NewFile("Report 1", "Report 1"),
					),
				},
				NewFile("Document 2", "Document 2"),
			),
		},
		NewFile("Main Document", "Main Document"),
	)
}
