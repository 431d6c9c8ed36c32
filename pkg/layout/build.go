package layout

// NewText creates a text leaf.
func NewText(data string) *Node {
	return &Node{Kind: KindText, Data: data}
}

// NewVerbatim creates a preformatted text leaf.
func NewVerbatim(data string) *Node {
	return &Node{Kind: KindVerbatim, Data: data}
}

// NewTitle creates a title holding a single text leaf.
func NewTitle(text string) *Node {
	return (&Node{Kind: KindTitle}).Append(NewText(text))
}

// NewParagraph creates a paragraph holding the given children.
func NewParagraph(children ...*Node) *Node {
	return (&Node{Kind: KindParagraph}).Append(children...)
}

// NewSection creates a section. A non-empty title becomes the first child
// and a non-empty description becomes a paragraph right after it, so the
// title text of a titled section is always at Child(0, 0).
func NewSection(title, description string, children ...*Node) *Node {
	section := &Node{Kind: KindSection}
	if title != "" {
		section.Append(NewTitle(title))
	}
	if description != "" {
		section.Append(NewParagraph(NewText(description)))
	}
	return section.Append(children...)
}

// NewReportSection creates a titled section tagged with a report id.
func NewReportSection(reportID, title, description string, children ...*Node) *Node {
	section := NewSection(title, description, children...)
	section.ReportID = reportID
	return section
}

// NewTable creates a table with cols columns. Cells are given in row-major
// order, header row first.
func NewTable(cols int, cells ...string) *Node {
	table := &Node{Kind: KindTable, Cols: cols}
	for _, cell := range cells {
		table.Append(NewText(cell))
	}
	return table
}
