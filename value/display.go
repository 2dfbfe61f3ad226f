package value

// Display returns the flat textual form of a node.
// Scalars yield their text; sequences and mappings yield "".
func Display(node Node) string {
	switch node.kind {
	case ScalarKind:
		return node.text
	case SequenceKind, MappingKind:
		return ""
	default:
		return ""
	}
}

// DisplayList returns the display form of every item of a sequence.
// Any other node yields an empty list.
func DisplayList(node Node) []string {
	switch node.kind {
	case SequenceKind:
		list := make([]string, 0, len(node.items))
		for _, item := range node.items {
			list = append(list, Display(item))
		}

		return list
	case ScalarKind, MappingKind:
		return []string{}
	default:
		return []string{}
	}
}
