package colormap

// Cividis is the default colormap: perceptually uniform and colour-vision
// deficiency friendly (matplotlib cividis).
var Cividis = mustLinear8("cividis", [][3]uint8{
	{0, 34, 78},
	{18, 53, 112},
	{59, 73, 108},
	{87, 93, 109},
	{112, 113, 115},
	{138, 134, 120},
	{165, 156, 116},
	{195, 179, 105},
	{225, 204, 85},
	{254, 232, 56},
})

// Viridis colormap (matplotlib viridis).
var Viridis = mustLinear8("viridis", [][3]uint8{
	{68, 1, 84},
	{72, 35, 116},
	{64, 67, 135},
	{52, 94, 141},
	{41, 120, 142},
	{32, 144, 140},
	{34, 167, 132},
	{68, 190, 112},
	{121, 209, 81},
	{189, 222, 38},
	{253, 231, 37},
})

// Plasma colormap.
var Plasma = mustLinear8("plasma", [][3]uint8{
	{13, 8, 135},
	{75, 3, 161},
	{125, 3, 168},
	{168, 34, 150},
	{203, 70, 121},
	{229, 107, 93},
	{248, 148, 65},
	{253, 195, 40},
	{240, 249, 33},
})

// Inferno colormap.
var Inferno = mustLinear8("inferno", [][3]uint8{
	{0, 0, 4},
	{40, 11, 84},
	{101, 21, 110},
	{159, 42, 99},
	{212, 72, 66},
	{245, 125, 21},
	{250, 193, 39},
	{252, 255, 164},
})

// Magma colormap.
var Magma = mustLinear8("magma", [][3]uint8{
	{0, 0, 4},
	{28, 16, 68},
	{79, 18, 123},
	{129, 37, 129},
	{181, 54, 122},
	{229, 80, 100},
	{251, 135, 97},
	{254, 194, 135},
	{252, 253, 191},
})
