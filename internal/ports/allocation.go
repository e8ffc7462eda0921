package ports

// Allocation pairs a base name with the format it will be rendered in.
type Allocation struct {
	BaseName string
	Format   FileType
}

// FileName is the on-disk name: base name plus the format tag as extension.
func (a Allocation) FileName() string {
	return a.BaseName + "." + string(a.Format)
}

// NameAllocator picks count (name, format) pairs with no base name repeated.
type NameAllocator interface {
	Allocate(count int, formats []FileType) ([]Allocation, error)
}
