package models

// Ownable is implemented by every tenant-scoped record. The store and
// handlers rely on it to key all reads and writes by the owning user.
type Ownable interface {
	GetUserID() uint
}
