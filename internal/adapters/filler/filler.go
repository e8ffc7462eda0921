// Package filler holds the constant content every renderer writes.
package filler

// Text is the body of every prose document.
const Text = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

// Table returns the rows of the delimited-text document, header first.
func Table() [][]string {
	return [][]string{
		{"Column1", "Column2", "Column3"},
		{"Data1", "Data2", "Data3"},
		{"Data4", "Data5", "Data6"},
	}
}

// Sheet returns the rows of the spreadsheet document, header first.
func Sheet() [][]string {
	return [][]string{
		{"Header1", "Header2", "Header3"},
		{"Value1", "Value2", "Value3"},
	}
}

// Record returns the key/value pairs of structured documents.
func Record() map[string]string {
	return map[string]string{
		"key1": "value1",
		"key2": "value2",
		"key3": "value3",
	}
}
