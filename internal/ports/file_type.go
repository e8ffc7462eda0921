package ports

// FileType is the identifier for each format.
type FileType string

const (
	FileTypeTXT  FileType = "txt"
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeCSV  FileType = "csv"
	FileTypeJSON FileType = "json"
	FileTypeXLS  FileType = "xls"
	FileTypeXLSX FileType = "xlsx"
	FileTypeYAML FileType = "yaml"
)
