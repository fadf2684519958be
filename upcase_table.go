package exfat

// upcaseTable is the compressed up-case table written to every new volume. It
// covers all 65536 UTF-16 code units using the Unicode simple uppercase
// mappings. Identity runs are encoded as 0xffff followed by the run length.
var upcaseTable = [...]byte{
	0xff, 0xff, 0x61, 0x00, 0x41, 0x00, 0x42, 0x00, 0x43, 0x00, 0x44, 0x00, 0x45, 0x00, 0x46, 0x00,
	0x47, 0x00, 0x48, 0x00, 0x49, 0x00, 0x4a, 0x00, 0x4b, 0x00, 0x4c, 0x00, 0x4d, 0x00, 0x4e, 0x00,
	0x4f, 0x00, 0x50, 0x00, 0x51, 0x00, 0x52, 0x00, 0x53, 0x00, 0x54, 0x00, 0x55, 0x00, 0x56, 0x00,
	0x57, 0x00, 0x58, 0x00, 0x59, 0x00, 0x5a, 0x00, 0xff, 0xff, 0x3a, 0x00, 0x9c, 0x03, 0xff, 0xff,
	0x2a, 0x00, 0xc0, 0x00, 0xc1, 0x00, 0xc2, 0x00, 0xc3, 0x00, 0xc4, 0x00, 0xc5, 0x00, 0xc6, 0x00,
	0xc7, 0x00, 0xc8, 0x00, 0xc9, 0x00, 0xca, 0x00, 0xcb, 0x00, 0xcc, 0x00, 0xcd, 0x00, 0xce, 0x00,
	0xcf, 0x00, 0xd0, 0x00, 0xd1, 0x00, 0xd2, 0x00, 0xd3, 0x00, 0xd4, 0x00, 0xd5, 0x00, 0xd6, 0x00,
	0xf7, 0x00, 0xd8, 0x00, 0xd9, 0x00, 0xda, 0x00, 0xdb, 0x00, 0xdc, 0x00, 0xdd, 0x00, 0xde, 0x00,
	0x78, 0x01, 0x00, 0x01, 0x00, 0x01, 0x02, 0x01, 0x02, 0x01, 0x04, 0x01, 0x04, 0x01, 0x06, 0x01,
	0x06, 0x01, 0x08, 0x01, 0x08, 0x01, 0x0a, 0x01, 0x0a, 0x01, 0x0c, 0x01, 0x0c, 0x01, 0x0e, 0x01,
	0x0e, 0x01, 0x10, 0x01, 0x10, 0x01, 0x12, 0x01, 0x12, 0x01, 0x14, 0x01, 0x14, 0x01, 0x16, 0x01,
	0x16, 0x01, 0x18, 0x01, 0x18, 0x01, 0x1a, 0x01, 0x1a, 0x01, 0x1c, 0x01, 0x1c, 0x01, 0x1e, 0x01,
	0x1e, 0x01, 0x20, 0x01, 0x20, 0x01, 0x22, 0x01, 0x22, 0x01, 0x24, 0x01, 0x24, 0x01, 0x26, 0x01,
	0x26, 0x01, 0x28, 0x01, 0x28, 0x01, 0x2a, 0x01, 0x2a, 0x01, 0x2c, 0x01, 0x2c, 0x01, 0x2e, 0x01,
	0x2e, 0x01, 0x30, 0x01, 0x49, 0x00, 0x32, 0x01, 0x32, 0x01, 0x34, 0x01, 0x34, 0x01, 0x36, 0x01,
	0x36, 0x01, 0x38, 0x01, 0x39, 0x01, 0x39, 0x01, 0x3b, 0x01, 0x3b, 0x01, 0x3d, 0x01, 0x3d, 0x01,
	0x3f, 0x01, 0x3f, 0x01, 0x41, 0x01, 0x41, 0x01, 0x43, 0x01, 0x43, 0x01, 0x45, 0x01, 0x45, 0x01,
	0x47, 0x01, 0x47, 0x01, 0x49, 0x01, 0x4a, 0x01, 0x4a, 0x01, 0x4c, 0x01, 0x4c, 0x01, 0x4e, 0x01,
	0x4e, 0x01, 0x50, 0x01, 0x50, 0x01, 0x52, 0x01, 0x52, 0x01, 0x54, 0x01, 0x54, 0x01, 0x56, 0x01,
	0x56, 0x01, 0x58, 0x01, 0x58, 0x01, 0x5a, 0x01, 0x5a, 0x01, 0x5c, 0x01, 0x5c, 0x01, 0x5e, 0x01,
	0x5e, 0x01, 0x60, 0x01, 0x60, 0x01, 0x62, 0x01, 0x62, 0x01, 0x64, 0x01, 0x64, 0x01, 0x66, 0x01,
	0x66, 0x01, 0x68, 0x01, 0x68, 0x01, 0x6a, 0x01, 0x6a, 0x01, 0x6c, 0x01, 0x6c, 0x01, 0x6e, 0x01,
	0x6e, 0x01, 0x70, 0x01, 0x70, 0x01, 0x72, 0x01, 0x72, 0x01, 0x74, 0x01, 0x74, 0x01, 0x76, 0x01,
	0x76, 0x01, 0x78, 0x01, 0x79, 0x01, 0x79, 0x01, 0x7b, 0x01, 0x7b, 0x01, 0x7d, 0x01, 0x7d, 0x01,
	0x53, 0x00, 0x43, 0x02, 0x81, 0x01, 0x82, 0x01, 0x82, 0x01, 0x84, 0x01, 0x84, 0x01, 0x86, 0x01,
	0x87, 0x01, 0x87, 0x01, 0xff, 0xff, 0x03, 0x00, 0x8b, 0x01, 0xff, 0xff, 0x05, 0x00, 0x91, 0x01,
	0x93, 0x01, 0x94, 0x01, 0xf6, 0x01, 0xff, 0xff, 0x03, 0x00, 0x98, 0x01, 0x3d, 0x02, 0xff, 0xff,
	0x03, 0x00, 0x20, 0x02, 0x9f, 0x01, 0xa0, 0x01, 0xa0, 0x01, 0xa2, 0x01, 0xa2, 0x01, 0xa4, 0x01,
	0xa4, 0x01, 0xa6, 0x01, 0xa7, 0x01, 0xa7, 0x01, 0xff, 0xff, 0x04, 0x00, 0xac, 0x01, 0xae, 0x01,
	0xaf, 0x01, 0xaf, 0x01, 0xff, 0xff, 0x03, 0x00, 0xb3, 0x01, 0xb5, 0x01, 0xb5, 0x01, 0xb7, 0x01,
	0xb8, 0x01, 0xb8, 0x01, 0xff, 0xff, 0x03, 0x00, 0xbc, 0x01, 0xbe, 0x01, 0xf7, 0x01, 0xff, 0xff,
	0x05, 0x00, 0xc4, 0x01, 0xc4, 0x01, 0xc7, 0x01, 0xc7, 0x01, 0xc7, 0x01, 0xca, 0x01, 0xca, 0x01,
	0xca, 0x01, 0xcd, 0x01, 0xcd, 0x01, 0xcf, 0x01, 0xcf, 0x01, 0xd1, 0x01, 0xd1, 0x01, 0xd3, 0x01,
	0xd3, 0x01, 0xd5, 0x01, 0xd5, 0x01, 0xd7, 0x01, 0xd7, 0x01, 0xd9, 0x01, 0xd9, 0x01, 0xdb, 0x01,
	0xdb, 0x01, 0x8e, 0x01, 0xde, 0x01, 0xde, 0x01, 0xe0, 0x01, 0xe0, 0x01, 0xe2, 0x01, 0xe2, 0x01,
	0xe4, 0x01, 0xe4, 0x01, 0xe6, 0x01, 0xe6, 0x01, 0xe8, 0x01, 0xe8, 0x01, 0xea, 0x01, 0xea, 0x01,
	0xec, 0x01, 0xec, 0x01, 0xee, 0x01, 0xee, 0x01, 0xf0, 0x01, 0xf1, 0x01, 0xf1, 0x01, 0xf1, 0x01,
	0xf4, 0x01, 0xf4, 0x01, 0xff, 0xff, 0x03, 0x00, 0xf8, 0x01, 0xfa, 0x01, 0xfa, 0x01, 0xfc, 0x01,
	0xfc, 0x01, 0xfe, 0x01, 0xfe, 0x01, 0x00, 0x02, 0x00, 0x02, 0x02, 0x02, 0x02, 0x02, 0x04, 0x02,
	0x04, 0x02, 0x06, 0x02, 0x06, 0x02, 0x08, 0x02, 0x08, 0x02, 0x0a, 0x02, 0x0a, 0x02, 0x0c, 0x02,
	0x0c, 0x02, 0x0e, 0x02, 0x0e, 0x02, 0x10, 0x02, 0x10, 0x02, 0x12, 0x02, 0x12, 0x02, 0x14, 0x02,
	0x14, 0x02, 0x16, 0x02, 0x16, 0x02, 0x18, 0x02, 0x18, 0x02, 0x1a, 0x02, 0x1a, 0x02, 0x1c, 0x02,
	0x1c, 0x02, 0x1e, 0x02, 0x1e, 0x02, 0xff, 0xff, 0x03, 0x00, 0x22, 0x02, 0x24, 0x02, 0x24, 0x02,
	0x26, 0x02, 0x26, 0x02, 0x28, 0x02, 0x28, 0x02, 0x2a, 0x02, 0x2a, 0x02, 0x2c, 0x02, 0x2c, 0x02,
	0x2e, 0x02, 0x2e, 0x02, 0x30, 0x02, 0x30, 0x02, 0x32, 0x02, 0x32, 0x02, 0xff, 0xff, 0x08, 0x00,
	0x3b, 0x02, 0x3d, 0x02, 0x3e, 0x02, 0x7e, 0x2c, 0x7f, 0x2c, 0x41, 0x02, 0x41, 0x02, 0xff, 0xff,
	0x04, 0x00, 0x46, 0x02, 0x48, 0x02, 0x48, 0x02, 0x4a, 0x02, 0x4a, 0x02, 0x4c, 0x02, 0x4c, 0x02,
	0x4e, 0x02, 0x4e, 0x02, 0x6f, 0x2c, 0x6d, 0x2c, 0x70, 0x2c, 0x81, 0x01, 0x86, 0x01, 0x55, 0x02,
	0x89, 0x01, 0x8a, 0x01, 0x58, 0x02, 0x8f, 0x01, 0x5a, 0x02, 0x90, 0x01, 0xab, 0xa7, 0xff, 0xff,
	0x03, 0x00, 0x93, 0x01, 0xac, 0xa7, 0x62, 0x02, 0x94, 0x01, 0x64, 0x02, 0x8d, 0xa7, 0xaa, 0xa7,
	0x67, 0x02, 0x97, 0x01, 0x96, 0x01, 0xae, 0xa7, 0x62, 0x2c, 0xad, 0xa7, 0x6d, 0x02, 0x6e, 0x02,
	0x9c, 0x01, 0x70, 0x02, 0x6e, 0x2c, 0x9d, 0x01, 0x73, 0x02, 0x74, 0x02, 0x9f, 0x01, 0xff, 0xff,
	0x07, 0x00, 0x64, 0x2c, 0x7e, 0x02, 0x7f, 0x02, 0xa6, 0x01, 0x81, 0x02, 0xc5, 0xa7, 0xa9, 0x01,
	0xff, 0xff, 0x03, 0x00, 0xb1, 0xa7, 0xae, 0x01, 0x44, 0x02, 0xb1, 0x01, 0xb2, 0x01, 0x45, 0x02,
	0xff, 0xff, 0x05, 0x00, 0xb7, 0x01, 0xff, 0xff, 0x0a, 0x00, 0xb2, 0xa7, 0xb0, 0xa7, 0xff, 0xff,
	0xa6, 0x00, 0x99, 0x03, 0xff, 0xff, 0x2b, 0x00, 0x70, 0x03, 0x72, 0x03, 0x72, 0x03, 0xff, 0xff,
	0x03, 0x00, 0x76, 0x03, 0xff, 0xff, 0x03, 0x00, 0xfd, 0x03, 0xfe, 0x03, 0xff, 0x03, 0xff, 0xff,
	0x2e, 0x00, 0x86, 0x03, 0x88, 0x03, 0x89, 0x03, 0x8a, 0x03, 0xb0, 0x03, 0x91, 0x03, 0x92, 0x03,
	0x93, 0x03, 0x94, 0x03, 0x95, 0x03, 0x96, 0x03, 0x97, 0x03, 0x98, 0x03, 0x99, 0x03, 0x9a, 0x03,
	0x9b, 0x03, 0x9c, 0x03, 0x9d, 0x03, 0x9e, 0x03, 0x9f, 0x03, 0xa0, 0x03, 0xa1, 0x03, 0xa3, 0x03,
	0xa3, 0x03, 0xa4, 0x03, 0xa5, 0x03, 0xa6, 0x03, 0xa7, 0x03, 0xa8, 0x03, 0xa9, 0x03, 0xaa, 0x03,
	0xab, 0x03, 0x8c, 0x03, 0x8e, 0x03, 0x8f, 0x03, 0xcf, 0x03, 0x92, 0x03, 0x98, 0x03, 0xff, 0xff,
	0x03, 0x00, 0xa6, 0x03, 0xa0, 0x03, 0xcf, 0x03, 0xd8, 0x03, 0xd8, 0x03, 0xda, 0x03, 0xda, 0x03,
	0xdc, 0x03, 0xdc, 0x03, 0xde, 0x03, 0xde, 0x03, 0xe0, 0x03, 0xe0, 0x03, 0xe2, 0x03, 0xe2, 0x03,
	0xe4, 0x03, 0xe4, 0x03, 0xe6, 0x03, 0xe6, 0x03, 0xe8, 0x03, 0xe8, 0x03, 0xea, 0x03, 0xea, 0x03,
	0xec, 0x03, 0xec, 0x03, 0xee, 0x03, 0xee, 0x03, 0x9a, 0x03, 0xa1, 0x03, 0xf9, 0x03, 0x7f, 0x03,
	0xf4, 0x03, 0x95, 0x03, 0xf6, 0x03, 0xf7, 0x03, 0xf7, 0x03, 0xf9, 0x03, 0xfa, 0x03, 0xfa, 0x03,
	0xff, 0xff, 0x34, 0x00, 0x10, 0x04, 0x11, 0x04, 0x12, 0x04, 0x13, 0x04, 0x14, 0x04, 0x15, 0x04,
	0x16, 0x04, 0x17, 0x04, 0x18, 0x04, 0x19, 0x04, 0x1a, 0x04, 0x1b, 0x04, 0x1c, 0x04, 0x1d, 0x04,
	0x1e, 0x04, 0x1f, 0x04, 0x20, 0x04, 0x21, 0x04, 0x22, 0x04, 0x23, 0x04, 0x24, 0x04, 0x25, 0x04,
	0x26, 0x04, 0x27, 0x04, 0x28, 0x04, 0x29, 0x04, 0x2a, 0x04, 0x2b, 0x04, 0x2c, 0x04, 0x2d, 0x04,
	0x2e, 0x04, 0x2f, 0x04, 0x00, 0x04, 0x01, 0x04, 0x02, 0x04, 0x03, 0x04, 0x04, 0x04, 0x05, 0x04,
	0x06, 0x04, 0x07, 0x04, 0x08, 0x04, 0x09, 0x04, 0x0a, 0x04, 0x0b, 0x04, 0x0c, 0x04, 0x0d, 0x04,
	0x0e, 0x04, 0x0f, 0x04, 0x60, 0x04, 0x60, 0x04, 0x62, 0x04, 0x62, 0x04, 0x64, 0x04, 0x64, 0x04,
	0x66, 0x04, 0x66, 0x04, 0x68, 0x04, 0x68, 0x04, 0x6a, 0x04, 0x6a, 0x04, 0x6c, 0x04, 0x6c, 0x04,
	0x6e, 0x04, 0x6e, 0x04, 0x70, 0x04, 0x70, 0x04, 0x72, 0x04, 0x72, 0x04, 0x74, 0x04, 0x74, 0x04,
	0x76, 0x04, 0x76, 0x04, 0x78, 0x04, 0x78, 0x04, 0x7a, 0x04, 0x7a, 0x04, 0x7c, 0x04, 0x7c, 0x04,
	0x7e, 0x04, 0x7e, 0x04, 0x80, 0x04, 0x80, 0x04, 0xff, 0xff, 0x09, 0x00, 0x8a, 0x04, 0x8c, 0x04,
	0x8c, 0x04, 0x8e, 0x04, 0x8e, 0x04, 0x90, 0x04, 0x90, 0x04, 0x92, 0x04, 0x92, 0x04, 0x94, 0x04,
	0x94, 0x04, 0x96, 0x04, 0x96, 0x04, 0x98, 0x04, 0x98, 0x04, 0x9a, 0x04, 0x9a, 0x04, 0x9c, 0x04,
	0x9c, 0x04, 0x9e, 0x04, 0x9e, 0x04, 0xa0, 0x04, 0xa0, 0x04, 0xa2, 0x04, 0xa2, 0x04, 0xa4, 0x04,
	0xa4, 0x04, 0xa6, 0x04, 0xa6, 0x04, 0xa8, 0x04, 0xa8, 0x04, 0xaa, 0x04, 0xaa, 0x04, 0xac, 0x04,
	0xac, 0x04, 0xae, 0x04, 0xae, 0x04, 0xb0, 0x04, 0xb0, 0x04, 0xb2, 0x04, 0xb2, 0x04, 0xb4, 0x04,
	0xb4, 0x04, 0xb6, 0x04, 0xb6, 0x04, 0xb8, 0x04, 0xb8, 0x04, 0xba, 0x04, 0xba, 0x04, 0xbc, 0x04,
	0xbc, 0x04, 0xbe, 0x04, 0xbe, 0x04, 0xc0, 0x04, 0xc1, 0x04, 0xc1, 0x04, 0xc3, 0x04, 0xc3, 0x04,
	0xc5, 0x04, 0xc5, 0x04, 0xc7, 0x04, 0xc7, 0x04, 0xc9, 0x04, 0xc9, 0x04, 0xcb, 0x04, 0xcb, 0x04,
	0xcd, 0x04, 0xcd, 0x04, 0xc0, 0x04, 0xd0, 0x04, 0xd0, 0x04, 0xd2, 0x04, 0xd2, 0x04, 0xd4, 0x04,
	0xd4, 0x04, 0xd6, 0x04, 0xd6, 0x04, 0xd8, 0x04, 0xd8, 0x04, 0xda, 0x04, 0xda, 0x04, 0xdc, 0x04,
	0xdc, 0x04, 0xde, 0x04, 0xde, 0x04, 0xe0, 0x04, 0xe0, 0x04, 0xe2, 0x04, 0xe2, 0x04, 0xe4, 0x04,
	0xe4, 0x04, 0xe6, 0x04, 0xe6, 0x04, 0xe8, 0x04, 0xe8, 0x04, 0xea, 0x04, 0xea, 0x04, 0xec, 0x04,
	0xec, 0x04, 0xee, 0x04, 0xee, 0x04, 0xf0, 0x04, 0xf0, 0x04, 0xf2, 0x04, 0xf2, 0x04, 0xf4, 0x04,
	0xf4, 0x04, 0xf6, 0x04, 0xf6, 0x04, 0xf8, 0x04, 0xf8, 0x04, 0xfa, 0x04, 0xfa, 0x04, 0xfc, 0x04,
	0xfc, 0x04, 0xfe, 0x04, 0xfe, 0x04, 0x00, 0x05, 0x00, 0x05, 0x02, 0x05, 0x02, 0x05, 0x04, 0x05,
	0x04, 0x05, 0x06, 0x05, 0x06, 0x05, 0x08, 0x05, 0x08, 0x05, 0x0a, 0x05, 0x0a, 0x05, 0x0c, 0x05,
	0x0c, 0x05, 0x0e, 0x05, 0x0e, 0x05, 0x10, 0x05, 0x10, 0x05, 0x12, 0x05, 0x12, 0x05, 0x14, 0x05,
	0x14, 0x05, 0x16, 0x05, 0x16, 0x05, 0x18, 0x05, 0x18, 0x05, 0x1a, 0x05, 0x1a, 0x05, 0x1c, 0x05,
	0x1c, 0x05, 0x1e, 0x05, 0x1e, 0x05, 0x20, 0x05, 0x20, 0x05, 0x22, 0x05, 0x22, 0x05, 0x24, 0x05,
	0x24, 0x05, 0x26, 0x05, 0x26, 0x05, 0x28, 0x05, 0x28, 0x05, 0x2a, 0x05, 0x2a, 0x05, 0x2c, 0x05,
	0x2c, 0x05, 0x2e, 0x05, 0x2e, 0x05, 0xff, 0xff, 0x31, 0x00, 0x31, 0x05, 0x32, 0x05, 0x33, 0x05,
	0x34, 0x05, 0x35, 0x05, 0x36, 0x05, 0x37, 0x05, 0x38, 0x05, 0x39, 0x05, 0x3a, 0x05, 0x3b, 0x05,
	0x3c, 0x05, 0x3d, 0x05, 0x3e, 0x05, 0x3f, 0x05, 0x40, 0x05, 0x41, 0x05, 0x42, 0x05, 0x43, 0x05,
	0x44, 0x05, 0x45, 0x05, 0x46, 0x05, 0x47, 0x05, 0x48, 0x05, 0x49, 0x05, 0x4a, 0x05, 0x4b, 0x05,
	0x4c, 0x05, 0x4d, 0x05, 0x4e, 0x05, 0x4f, 0x05, 0x50, 0x05, 0x51, 0x05, 0x52, 0x05, 0x53, 0x05,
	0x54, 0x05, 0x55, 0x05, 0x56, 0x05, 0xff, 0xff, 0x49, 0x0b, 0x90, 0x1c, 0x91, 0x1c, 0x92, 0x1c,
	0x93, 0x1c, 0x94, 0x1c, 0x95, 0x1c, 0x96, 0x1c, 0x97, 0x1c, 0x98, 0x1c, 0x99, 0x1c, 0x9a, 0x1c,
	0x9b, 0x1c, 0x9c, 0x1c, 0x9d, 0x1c, 0x9e, 0x1c, 0x9f, 0x1c, 0xa0, 0x1c, 0xa1, 0x1c, 0xa2, 0x1c,
	0xa3, 0x1c, 0xa4, 0x1c, 0xa5, 0x1c, 0xa6, 0x1c, 0xa7, 0x1c, 0xa8, 0x1c, 0xa9, 0x1c, 0xaa, 0x1c,
	0xab, 0x1c, 0xac, 0x1c, 0xad, 0x1c, 0xae, 0x1c, 0xaf, 0x1c, 0xb0, 0x1c, 0xb1, 0x1c, 0xb2, 0x1c,
	0xb3, 0x1c, 0xb4, 0x1c, 0xb5, 0x1c, 0xb6, 0x1c, 0xb7, 0x1c, 0xb8, 0x1c, 0xb9, 0x1c, 0xba, 0x1c,
	0xfb, 0x10, 0xfc, 0x10, 0xbd, 0x1c, 0xbe, 0x1c, 0xbf, 0x1c, 0xff, 0xff, 0xf8, 0x02, 0xf0, 0x13,
	0xf1, 0x13, 0xf2, 0x13, 0xf3, 0x13, 0xf4, 0x13, 0xf5, 0x13, 0xff, 0xff, 0x82, 0x08, 0x12, 0x04,
	0x14, 0x04, 0x1e, 0x04, 0x21, 0x04, 0x22, 0x04, 0x22, 0x04, 0x2a, 0x04, 0x62, 0x04, 0x4a, 0xa6,
	0xff, 0xff, 0xf0, 0x00, 0x7d, 0xa7, 0xff, 0xff, 0x03, 0x00, 0x63, 0x2c, 0xff, 0xff, 0x10, 0x00,
	0xc6, 0xa7, 0xff, 0xff, 0x72, 0x00, 0x00, 0x1e, 0x02, 0x1e, 0x02, 0x1e, 0x04, 0x1e, 0x04, 0x1e,
	0x06, 0x1e, 0x06, 0x1e, 0x08, 0x1e, 0x08, 0x1e, 0x0a, 0x1e, 0x0a, 0x1e, 0x0c, 0x1e, 0x0c, 0x1e,
	0x0e, 0x1e, 0x0e, 0x1e, 0x10, 0x1e, 0x10, 0x1e, 0x12, 0x1e, 0x12, 0x1e, 0x14, 0x1e, 0x14, 0x1e,
	0x16, 0x1e, 0x16, 0x1e, 0x18, 0x1e, 0x18, 0x1e, 0x1a, 0x1e, 0x1a, 0x1e, 0x1c, 0x1e, 0x1c, 0x1e,
	0x1e, 0x1e, 0x1e, 0x1e, 0x20, 0x1e, 0x20, 0x1e, 0x22, 0x1e, 0x22, 0x1e, 0x24, 0x1e, 0x24, 0x1e,
	0x26, 0x1e, 0x26, 0x1e, 0x28, 0x1e, 0x28, 0x1e, 0x2a, 0x1e, 0x2a, 0x1e, 0x2c, 0x1e, 0x2c, 0x1e,
	0x2e, 0x1e, 0x2e, 0x1e, 0x30, 0x1e, 0x30, 0x1e, 0x32, 0x1e, 0x32, 0x1e, 0x34, 0x1e, 0x34, 0x1e,
	0x36, 0x1e, 0x36, 0x1e, 0x38, 0x1e, 0x38, 0x1e, 0x3a, 0x1e, 0x3a, 0x1e, 0x3c, 0x1e, 0x3c, 0x1e,
	0x3e, 0x1e, 0x3e, 0x1e, 0x40, 0x1e, 0x40, 0x1e, 0x42, 0x1e, 0x42, 0x1e, 0x44, 0x1e, 0x44, 0x1e,
	0x46, 0x1e, 0x46, 0x1e, 0x48, 0x1e, 0x48, 0x1e, 0x4a, 0x1e, 0x4a, 0x1e, 0x4c, 0x1e, 0x4c, 0x1e,
	0x4e, 0x1e, 0x4e, 0x1e, 0x50, 0x1e, 0x50, 0x1e, 0x52, 0x1e, 0x52, 0x1e, 0x54, 0x1e, 0x54, 0x1e,
	0x56, 0x1e, 0x56, 0x1e, 0x58, 0x1e, 0x58, 0x1e, 0x5a, 0x1e, 0x5a, 0x1e, 0x5c, 0x1e, 0x5c, 0x1e,
	0x5e, 0x1e, 0x5e, 0x1e, 0x60, 0x1e, 0x60, 0x1e, 0x62, 0x1e, 0x62, 0x1e, 0x64, 0x1e, 0x64, 0x1e,
	0x66, 0x1e, 0x66, 0x1e, 0x68, 0x1e, 0x68, 0x1e, 0x6a, 0x1e, 0x6a, 0x1e, 0x6c, 0x1e, 0x6c, 0x1e,
	0x6e, 0x1e, 0x6e, 0x1e, 0x70, 0x1e, 0x70, 0x1e, 0x72, 0x1e, 0x72, 0x1e, 0x74, 0x1e, 0x74, 0x1e,
	0x76, 0x1e, 0x76, 0x1e, 0x78, 0x1e, 0x78, 0x1e, 0x7a, 0x1e, 0x7a, 0x1e, 0x7c, 0x1e, 0x7c, 0x1e,
	0x7e, 0x1e, 0x7e, 0x1e, 0x80, 0x1e, 0x80, 0x1e, 0x82, 0x1e, 0x82, 0x1e, 0x84, 0x1e, 0x84, 0x1e,
	0x86, 0x1e, 0x86, 0x1e, 0x88, 0x1e, 0x88, 0x1e, 0x8a, 0x1e, 0x8a, 0x1e, 0x8c, 0x1e, 0x8c, 0x1e,
	0x8e, 0x1e, 0x8e, 0x1e, 0x90, 0x1e, 0x90, 0x1e, 0x92, 0x1e, 0x92, 0x1e, 0x94, 0x1e, 0x94, 0x1e,
	0xff, 0xff, 0x05, 0x00, 0x60, 0x1e, 0xff, 0xff, 0x05, 0x00, 0xa0, 0x1e, 0xa2, 0x1e, 0xa2, 0x1e,
	0xa4, 0x1e, 0xa4, 0x1e, 0xa6, 0x1e, 0xa6, 0x1e, 0xa8, 0x1e, 0xa8, 0x1e, 0xaa, 0x1e, 0xaa, 0x1e,
	0xac, 0x1e, 0xac, 0x1e, 0xae, 0x1e, 0xae, 0x1e, 0xb0, 0x1e, 0xb0, 0x1e, 0xb2, 0x1e, 0xb2, 0x1e,
	0xb4, 0x1e, 0xb4, 0x1e, 0xb6, 0x1e, 0xb6, 0x1e, 0xb8, 0x1e, 0xb8, 0x1e, 0xba, 0x1e, 0xba, 0x1e,
	0xbc, 0x1e, 0xbc, 0x1e, 0xbe, 0x1e, 0xbe, 0x1e, 0xc0, 0x1e, 0xc0, 0x1e, 0xc2, 0x1e, 0xc2, 0x1e,
	0xc4, 0x1e, 0xc4, 0x1e, 0xc6, 0x1e, 0xc6, 0x1e, 0xc8, 0x1e, 0xc8, 0x1e, 0xca, 0x1e, 0xca, 0x1e,
	0xcc, 0x1e, 0xcc, 0x1e, 0xce, 0x1e, 0xce, 0x1e, 0xd0, 0x1e, 0xd0, 0x1e, 0xd2, 0x1e, 0xd2, 0x1e,
	0xd4, 0x1e, 0xd4, 0x1e, 0xd6, 0x1e, 0xd6, 0x1e, 0xd8, 0x1e, 0xd8, 0x1e, 0xda, 0x1e, 0xda, 0x1e,
	0xdc, 0x1e, 0xdc, 0x1e, 0xde, 0x1e, 0xde, 0x1e, 0xe0, 0x1e, 0xe0, 0x1e, 0xe2, 0x1e, 0xe2, 0x1e,
	0xe4, 0x1e, 0xe4, 0x1e, 0xe6, 0x1e, 0xe6, 0x1e, 0xe8, 0x1e, 0xe8, 0x1e, 0xea, 0x1e, 0xea, 0x1e,
	0xec, 0x1e, 0xec, 0x1e, 0xee, 0x1e, 0xee, 0x1e, 0xf0, 0x1e, 0xf0, 0x1e, 0xf2, 0x1e, 0xf2, 0x1e,
	0xf4, 0x1e, 0xf4, 0x1e, 0xf6, 0x1e, 0xf6, 0x1e, 0xf8, 0x1e, 0xf8, 0x1e, 0xfa, 0x1e, 0xfa, 0x1e,
	0xfc, 0x1e, 0xfc, 0x1e, 0xfe, 0x1e, 0xfe, 0x1e, 0x08, 0x1f, 0x09, 0x1f, 0x0a, 0x1f, 0x0b, 0x1f,
	0x0c, 0x1f, 0x0d, 0x1f, 0x0e, 0x1f, 0x0f, 0x1f, 0xff, 0xff, 0x08, 0x00, 0x18, 0x1f, 0x19, 0x1f,
	0x1a, 0x1f, 0x1b, 0x1f, 0x1c, 0x1f, 0x1d, 0x1f, 0xff, 0xff, 0x0a, 0x00, 0x28, 0x1f, 0x29, 0x1f,
	0x2a, 0x1f, 0x2b, 0x1f, 0x2c, 0x1f, 0x2d, 0x1f, 0x2e, 0x1f, 0x2f, 0x1f, 0xff, 0xff, 0x08, 0x00,
	0x38, 0x1f, 0x39, 0x1f, 0x3a, 0x1f, 0x3b, 0x1f, 0x3c, 0x1f, 0x3d, 0x1f, 0x3e, 0x1f, 0x3f, 0x1f,
	0xff, 0xff, 0x08, 0x00, 0x48, 0x1f, 0x49, 0x1f, 0x4a, 0x1f, 0x4b, 0x1f, 0x4c, 0x1f, 0x4d, 0x1f,
	0xff, 0xff, 0x0b, 0x00, 0x59, 0x1f, 0x52, 0x1f, 0x5b, 0x1f, 0x54, 0x1f, 0x5d, 0x1f, 0x56, 0x1f,
	0x5f, 0x1f, 0xff, 0xff, 0x08, 0x00, 0x68, 0x1f, 0x69, 0x1f, 0x6a, 0x1f, 0x6b, 0x1f, 0x6c, 0x1f,
	0x6d, 0x1f, 0x6e, 0x1f, 0x6f, 0x1f, 0xff, 0xff, 0x08, 0x00, 0xba, 0x1f, 0xbb, 0x1f, 0xc8, 0x1f,
	0xc9, 0x1f, 0xca, 0x1f, 0xcb, 0x1f, 0xda, 0x1f, 0xdb, 0x1f, 0xf8, 0x1f, 0xf9, 0x1f, 0xea, 0x1f,
	0xeb, 0x1f, 0xfa, 0x1f, 0xfb, 0x1f, 0xff, 0xff, 0x32, 0x00, 0xb8, 0x1f, 0xb9, 0x1f, 0xff, 0xff,
	0x0c, 0x00, 0x99, 0x03, 0xff, 0xff, 0x11, 0x00, 0xd8, 0x1f, 0xd9, 0x1f, 0xff, 0xff, 0x0e, 0x00,
	0xe8, 0x1f, 0xe9, 0x1f, 0xff, 0xff, 0x03, 0x00, 0xec, 0x1f, 0xff, 0xff, 0x68, 0x01, 0x32, 0x21,
	0xff, 0xff, 0x21, 0x00, 0x60, 0x21, 0x61, 0x21, 0x62, 0x21, 0x63, 0x21, 0x64, 0x21, 0x65, 0x21,
	0x66, 0x21, 0x67, 0x21, 0x68, 0x21, 0x69, 0x21, 0x6a, 0x21, 0x6b, 0x21, 0x6c, 0x21, 0x6d, 0x21,
	0x6e, 0x21, 0x6f, 0x21, 0xff, 0xff, 0x04, 0x00, 0x83, 0x21, 0xff, 0xff, 0x4b, 0x03, 0xb6, 0x24,
	0xb7, 0x24, 0xb8, 0x24, 0xb9, 0x24, 0xba, 0x24, 0xbb, 0x24, 0xbc, 0x24, 0xbd, 0x24, 0xbe, 0x24,
	0xbf, 0x24, 0xc0, 0x24, 0xc1, 0x24, 0xc2, 0x24, 0xc3, 0x24, 0xc4, 0x24, 0xc5, 0x24, 0xc6, 0x24,
	0xc7, 0x24, 0xc8, 0x24, 0xc9, 0x24, 0xca, 0x24, 0xcb, 0x24, 0xcc, 0x24, 0xcd, 0x24, 0xce, 0x24,
	0xcf, 0x24, 0xff, 0xff, 0x46, 0x07, 0x00, 0x2c, 0x01, 0x2c, 0x02, 0x2c, 0x03, 0x2c, 0x04, 0x2c,
	0x05, 0x2c, 0x06, 0x2c, 0x07, 0x2c, 0x08, 0x2c, 0x09, 0x2c, 0x0a, 0x2c, 0x0b, 0x2c, 0x0c, 0x2c,
	0x0d, 0x2c, 0x0e, 0x2c, 0x0f, 0x2c, 0x10, 0x2c, 0x11, 0x2c, 0x12, 0x2c, 0x13, 0x2c, 0x14, 0x2c,
	0x15, 0x2c, 0x16, 0x2c, 0x17, 0x2c, 0x18, 0x2c, 0x19, 0x2c, 0x1a, 0x2c, 0x1b, 0x2c, 0x1c, 0x2c,
	0x1d, 0x2c, 0x1e, 0x2c, 0x1f, 0x2c, 0x20, 0x2c, 0x21, 0x2c, 0x22, 0x2c, 0x23, 0x2c, 0x24, 0x2c,
	0x25, 0x2c, 0x26, 0x2c, 0x27, 0x2c, 0x28, 0x2c, 0x29, 0x2c, 0x2a, 0x2c, 0x2b, 0x2c, 0x2c, 0x2c,
	0x2d, 0x2c, 0x2e, 0x2c, 0x2f, 0x2c, 0x60, 0x2c, 0x60, 0x2c, 0xff, 0xff, 0x03, 0x00, 0x3a, 0x02,
	0x3e, 0x02, 0x67, 0x2c, 0x67, 0x2c, 0x69, 0x2c, 0x69, 0x2c, 0x6b, 0x2c, 0x6b, 0x2c, 0xff, 0xff,
	0x06, 0x00, 0x72, 0x2c, 0x74, 0x2c, 0x75, 0x2c, 0x75, 0x2c, 0xff, 0xff, 0x0a, 0x00, 0x80, 0x2c,
	0x82, 0x2c, 0x82, 0x2c, 0x84, 0x2c, 0x84, 0x2c, 0x86, 0x2c, 0x86, 0x2c, 0x88, 0x2c, 0x88, 0x2c,
	0x8a, 0x2c, 0x8a, 0x2c, 0x8c, 0x2c, 0x8c, 0x2c, 0x8e, 0x2c, 0x8e, 0x2c, 0x90, 0x2c, 0x90, 0x2c,
	0x92, 0x2c, 0x92, 0x2c, 0x94, 0x2c, 0x94, 0x2c, 0x96, 0x2c, 0x96, 0x2c, 0x98, 0x2c, 0x98, 0x2c,
	0x9a, 0x2c, 0x9a, 0x2c, 0x9c, 0x2c, 0x9c, 0x2c, 0x9e, 0x2c, 0x9e, 0x2c, 0xa0, 0x2c, 0xa0, 0x2c,
	0xa2, 0x2c, 0xa2, 0x2c, 0xa4, 0x2c, 0xa4, 0x2c, 0xa6, 0x2c, 0xa6, 0x2c, 0xa8, 0x2c, 0xa8, 0x2c,
	0xaa, 0x2c, 0xaa, 0x2c, 0xac, 0x2c, 0xac, 0x2c, 0xae, 0x2c, 0xae, 0x2c, 0xb0, 0x2c, 0xb0, 0x2c,
	0xb2, 0x2c, 0xb2, 0x2c, 0xb4, 0x2c, 0xb4, 0x2c, 0xb6, 0x2c, 0xb6, 0x2c, 0xb8, 0x2c, 0xb8, 0x2c,
	0xba, 0x2c, 0xba, 0x2c, 0xbc, 0x2c, 0xbc, 0x2c, 0xbe, 0x2c, 0xbe, 0x2c, 0xc0, 0x2c, 0xc0, 0x2c,
	0xc2, 0x2c, 0xc2, 0x2c, 0xc4, 0x2c, 0xc4, 0x2c, 0xc6, 0x2c, 0xc6, 0x2c, 0xc8, 0x2c, 0xc8, 0x2c,
	0xca, 0x2c, 0xca, 0x2c, 0xcc, 0x2c, 0xcc, 0x2c, 0xce, 0x2c, 0xce, 0x2c, 0xd0, 0x2c, 0xd0, 0x2c,
	0xd2, 0x2c, 0xd2, 0x2c, 0xd4, 0x2c, 0xd4, 0x2c, 0xd6, 0x2c, 0xd6, 0x2c, 0xd8, 0x2c, 0xd8, 0x2c,
	0xda, 0x2c, 0xda, 0x2c, 0xdc, 0x2c, 0xdc, 0x2c, 0xde, 0x2c, 0xde, 0x2c, 0xe0, 0x2c, 0xe0, 0x2c,
	0xe2, 0x2c, 0xe2, 0x2c, 0xff, 0xff, 0x08, 0x00, 0xeb, 0x2c, 0xed, 0x2c, 0xed, 0x2c, 0xff, 0xff,
	0x04, 0x00, 0xf2, 0x2c, 0xff, 0xff, 0x0c, 0x00, 0xa0, 0x10, 0xa1, 0x10, 0xa2, 0x10, 0xa3, 0x10,
	0xa4, 0x10, 0xa5, 0x10, 0xa6, 0x10, 0xa7, 0x10, 0xa8, 0x10, 0xa9, 0x10, 0xaa, 0x10, 0xab, 0x10,
	0xac, 0x10, 0xad, 0x10, 0xae, 0x10, 0xaf, 0x10, 0xb0, 0x10, 0xb1, 0x10, 0xb2, 0x10, 0xb3, 0x10,
	0xb4, 0x10, 0xb5, 0x10, 0xb6, 0x10, 0xb7, 0x10, 0xb8, 0x10, 0xb9, 0x10, 0xba, 0x10, 0xbb, 0x10,
	0xbc, 0x10, 0xbd, 0x10, 0xbe, 0x10, 0xbf, 0x10, 0xc0, 0x10, 0xc1, 0x10, 0xc2, 0x10, 0xc3, 0x10,
	0xc4, 0x10, 0xc5, 0x10, 0x26, 0x2d, 0xc7, 0x10, 0xff, 0xff, 0x05, 0x00, 0xcd, 0x10, 0xff, 0xff,
	0x13, 0x79, 0x40, 0xa6, 0x42, 0xa6, 0x42, 0xa6, 0x44, 0xa6, 0x44, 0xa6, 0x46, 0xa6, 0x46, 0xa6,
	0x48, 0xa6, 0x48, 0xa6, 0x4a, 0xa6, 0x4a, 0xa6, 0x4c, 0xa6, 0x4c, 0xa6, 0x4e, 0xa6, 0x4e, 0xa6,
	0x50, 0xa6, 0x50, 0xa6, 0x52, 0xa6, 0x52, 0xa6, 0x54, 0xa6, 0x54, 0xa6, 0x56, 0xa6, 0x56, 0xa6,
	0x58, 0xa6, 0x58, 0xa6, 0x5a, 0xa6, 0x5a, 0xa6, 0x5c, 0xa6, 0x5c, 0xa6, 0x5e, 0xa6, 0x5e, 0xa6,
	0x60, 0xa6, 0x60, 0xa6, 0x62, 0xa6, 0x62, 0xa6, 0x64, 0xa6, 0x64, 0xa6, 0x66, 0xa6, 0x66, 0xa6,
	0x68, 0xa6, 0x68, 0xa6, 0x6a, 0xa6, 0x6a, 0xa6, 0x6c, 0xa6, 0x6c, 0xa6, 0xff, 0xff, 0x13, 0x00,
	0x80, 0xa6, 0x82, 0xa6, 0x82, 0xa6, 0x84, 0xa6, 0x84, 0xa6, 0x86, 0xa6, 0x86, 0xa6, 0x88, 0xa6,
	0x88, 0xa6, 0x8a, 0xa6, 0x8a, 0xa6, 0x8c, 0xa6, 0x8c, 0xa6, 0x8e, 0xa6, 0x8e, 0xa6, 0x90, 0xa6,
	0x90, 0xa6, 0x92, 0xa6, 0x92, 0xa6, 0x94, 0xa6, 0x94, 0xa6, 0x96, 0xa6, 0x96, 0xa6, 0x98, 0xa6,
	0x98, 0xa6, 0x9a, 0xa6, 0x9a, 0xa6, 0xff, 0xff, 0x87, 0x00, 0x22, 0xa7, 0x24, 0xa7, 0x24, 0xa7,
	0x26, 0xa7, 0x26, 0xa7, 0x28, 0xa7, 0x28, 0xa7, 0x2a, 0xa7, 0x2a, 0xa7, 0x2c, 0xa7, 0x2c, 0xa7,
	0x2e, 0xa7, 0x2e, 0xa7, 0xff, 0xff, 0x03, 0x00, 0x32, 0xa7, 0x34, 0xa7, 0x34, 0xa7, 0x36, 0xa7,
	0x36, 0xa7, 0x38, 0xa7, 0x38, 0xa7, 0x3a, 0xa7, 0x3a, 0xa7, 0x3c, 0xa7, 0x3c, 0xa7, 0x3e, 0xa7,
	0x3e, 0xa7, 0x40, 0xa7, 0x40, 0xa7, 0x42, 0xa7, 0x42, 0xa7, 0x44, 0xa7, 0x44, 0xa7, 0x46, 0xa7,
	0x46, 0xa7, 0x48, 0xa7, 0x48, 0xa7, 0x4a, 0xa7, 0x4a, 0xa7, 0x4c, 0xa7, 0x4c, 0xa7, 0x4e, 0xa7,
	0x4e, 0xa7, 0x50, 0xa7, 0x50, 0xa7, 0x52, 0xa7, 0x52, 0xa7, 0x54, 0xa7, 0x54, 0xa7, 0x56, 0xa7,
	0x56, 0xa7, 0x58, 0xa7, 0x58, 0xa7, 0x5a, 0xa7, 0x5a, 0xa7, 0x5c, 0xa7, 0x5c, 0xa7, 0x5e, 0xa7,
	0x5e, 0xa7, 0x60, 0xa7, 0x60, 0xa7, 0x62, 0xa7, 0x62, 0xa7, 0x64, 0xa7, 0x64, 0xa7, 0x66, 0xa7,
	0x66, 0xa7, 0x68, 0xa7, 0x68, 0xa7, 0x6a, 0xa7, 0x6a, 0xa7, 0x6c, 0xa7, 0x6c, 0xa7, 0x6e, 0xa7,
	0x6e, 0xa7, 0xff, 0xff, 0x0a, 0x00, 0x79, 0xa7, 0x7b, 0xa7, 0x7b, 0xa7, 0x7d, 0xa7, 0x7e, 0xa7,
	0x7e, 0xa7, 0x80, 0xa7, 0x80, 0xa7, 0x82, 0xa7, 0x82, 0xa7, 0x84, 0xa7, 0x84, 0xa7, 0x86, 0xa7,
	0x86, 0xa7, 0xff, 0xff, 0x04, 0x00, 0x8b, 0xa7, 0xff, 0xff, 0x04, 0x00, 0x90, 0xa7, 0x92, 0xa7,
	0x92, 0xa7, 0xc4, 0xa7, 0x95, 0xa7, 0x96, 0xa7, 0x96, 0xa7, 0x98, 0xa7, 0x98, 0xa7, 0x9a, 0xa7,
	0x9a, 0xa7, 0x9c, 0xa7, 0x9c, 0xa7, 0x9e, 0xa7, 0x9e, 0xa7, 0xa0, 0xa7, 0xa0, 0xa7, 0xa2, 0xa7,
	0xa2, 0xa7, 0xa4, 0xa7, 0xa4, 0xa7, 0xa6, 0xa7, 0xa6, 0xa7, 0xa8, 0xa7, 0xa8, 0xa7, 0xff, 0xff,
	0x0b, 0x00, 0xb4, 0xa7, 0xb6, 0xa7, 0xb6, 0xa7, 0xb8, 0xa7, 0xb8, 0xa7, 0xba, 0xa7, 0xba, 0xa7,
	0xbc, 0xa7, 0xbc, 0xa7, 0xbe, 0xa7, 0xbe, 0xa7, 0xc0, 0xa7, 0xc0, 0xa7, 0xc2, 0xa7, 0xc2, 0xa7,
	0xff, 0xff, 0x04, 0x00, 0xc7, 0xa7, 0xc9, 0xa7, 0xc9, 0xa7, 0xff, 0xff, 0x06, 0x00, 0xd0, 0xa7,
	0xff, 0xff, 0x05, 0x00, 0xd6, 0xa7, 0xd8, 0xa7, 0xd8, 0xa7, 0xff, 0xff, 0x1c, 0x00, 0xf5, 0xa7,
	0xff, 0xff, 0x5c, 0x03, 0xb3, 0xa7, 0xff, 0xff, 0x1c, 0x00, 0xa0, 0x13, 0xa1, 0x13, 0xa2, 0x13,
	0xa3, 0x13, 0xa4, 0x13, 0xa5, 0x13, 0xa6, 0x13, 0xa7, 0x13, 0xa8, 0x13, 0xa9, 0x13, 0xaa, 0x13,
	0xab, 0x13, 0xac, 0x13, 0xad, 0x13, 0xae, 0x13, 0xaf, 0x13, 0xb0, 0x13, 0xb1, 0x13, 0xb2, 0x13,
	0xb3, 0x13, 0xb4, 0x13, 0xb5, 0x13, 0xb6, 0x13, 0xb7, 0x13, 0xb8, 0x13, 0xb9, 0x13, 0xba, 0x13,
	0xbb, 0x13, 0xbc, 0x13, 0xbd, 0x13, 0xbe, 0x13, 0xbf, 0x13, 0xc0, 0x13, 0xc1, 0x13, 0xc2, 0x13,
	0xc3, 0x13, 0xc4, 0x13, 0xc5, 0x13, 0xc6, 0x13, 0xc7, 0x13, 0xc8, 0x13, 0xc9, 0x13, 0xca, 0x13,
	0xcb, 0x13, 0xcc, 0x13, 0xcd, 0x13, 0xce, 0x13, 0xcf, 0x13, 0xd0, 0x13, 0xd1, 0x13, 0xd2, 0x13,
	0xd3, 0x13, 0xd4, 0x13, 0xd5, 0x13, 0xd6, 0x13, 0xd7, 0x13, 0xd8, 0x13, 0xd9, 0x13, 0xda, 0x13,
	0xdb, 0x13, 0xdc, 0x13, 0xdd, 0x13, 0xde, 0x13, 0xdf, 0x13, 0xe0, 0x13, 0xe1, 0x13, 0xe2, 0x13,
	0xe3, 0x13, 0xe4, 0x13, 0xe5, 0x13, 0xe6, 0x13, 0xe7, 0x13, 0xe8, 0x13, 0xe9, 0x13, 0xea, 0x13,
	0xeb, 0x13, 0xec, 0x13, 0xed, 0x13, 0xee, 0x13, 0xef, 0x13, 0xff, 0xff, 0x81, 0x53, 0x21, 0xff,
	0x22, 0xff, 0x23, 0xff, 0x24, 0xff, 0x25, 0xff, 0x26, 0xff, 0x27, 0xff, 0x28, 0xff, 0x29, 0xff,
	0x2a, 0xff, 0x2b, 0xff, 0x2c, 0xff, 0x2d, 0xff, 0x2e, 0xff, 0x2f, 0xff, 0x30, 0xff, 0x31, 0xff,
	0x32, 0xff, 0x33, 0xff, 0x34, 0xff, 0x35, 0xff, 0x36, 0xff, 0x37, 0xff, 0x38, 0xff, 0x39, 0xff,
	0x3a, 0xff, 0xff, 0xff, 0xa5, 0x00,
}
