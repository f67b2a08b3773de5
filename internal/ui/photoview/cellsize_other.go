//go:build !unix

package photoview

func getCellSize() (cellW, cellH int) {
	return 8, 16
}
