package clean

// RecycleBinInfo is the content summary of the Recycle Bin on all drives.
type RecycleBinInfo struct {
	Size  int64
	Items int64
}
