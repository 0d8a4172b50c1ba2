// Package imageio bridges image files on disk and the engine's pixel
// buffers. It decodes PNG, JPEG, GIF, BMP, and TIFF files into interleaved
// RGBA buffers, encodes buffers back out with the format chosen by file
// extension, and caches decoded buffers so repeated operations on the same
// file skip disk I/O.
package imageio
