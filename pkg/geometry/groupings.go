package geometry

// Face groupings of the physical rig, indexed by face. Pattern code uses these
// to address related flames without recomputing adjacency.

// Opposite maps each face to the face on the other side of the rig.
var Opposite = [FaceCount]int{
	27, 28, 29, 25, 26, // lower star
	23, 24, 20, 21, 22, // lower diagonal
	15, 16, 17, 18, 19, 10, 11, 12, 13, 14, // middle ring
	7, 8, 9, 5, 6, // upper diagonal
	3, 4, 0, 1, 2, // upper star
}

// Neighbors lists the four faces sharing an edge with each face.
var Neighbors = [FaceCount][4]int{
	{4, 1, 9, 5},
	{0, 2, 5, 6},
	{1, 3, 6, 7},
	{2, 4, 7, 8},
	{3, 0, 8, 9},

	{0, 10, 1, 11},
	{1, 12, 2, 13},
	{2, 14, 3, 15},
	{3, 16, 4, 17},
	{4, 18, 0, 19},

	{19, 5, 20, 11},
	{5, 12, 10, 21},
	{11, 6, 21, 13},
	{6, 14, 12, 22},
	{13, 7, 22, 15},
	{7, 16, 14, 23},
	{15, 8, 23, 17},
	{8, 18, 16, 24},
	{17, 9, 24, 19},
	{9, 10, 18, 20},

	{19, 29, 10, 25},
	{11, 25, 12, 26},
	{13, 26, 14, 27},
	{15, 27, 16, 28},
	{17, 28, 18, 29},

	{20, 21, 29, 26},
	{21, 22, 25, 27},
	{22, 23, 26, 28},
	{23, 24, 27, 29},
	{24, 20, 28, 25},
}

// Orthogonals lists the four faces at a right angle to each face.
var Orthogonals = [FaceCount][4]int{
	{7, 12, 17, 20},
	{8, 14, 19, 21},
	{9, 16, 11, 22},
	{5, 18, 13, 23},
	{6, 10, 15, 24},

	{3, 13, 18, 25},
	{4, 15, 10, 26},
	{0, 17, 12, 27},
	{1, 19, 14, 28},
	{2, 11, 16, 29},

	{4, 6, 24, 26},
	{2, 9, 22, 29},
	{0, 7, 20, 27},
	{3, 5, 23, 25},
	{1, 8, 21, 28},
	{4, 6, 24, 26},
	{2, 9, 22, 29},
	{0, 7, 20, 27},
	{3, 5, 23, 25},
	{1, 8, 21, 28},

	{0, 17, 12, 27},
	{1, 19, 14, 28},
	{2, 11, 16, 29},
	{3, 13, 18, 25},
	{4, 15, 10, 26},

	{5, 18, 13, 23},
	{6, 10, 15, 24},
	{7, 12, 17, 20},
	{8, 14, 19, 21},
	{9, 16, 11, 22},
}

// Stars are the twelve groups of five faces meeting at one vertex.
var Stars = [12][5]int{
	{0, 1, 2, 3, 4},

	{0, 5, 10, 19, 9},
	{1, 6, 12, 11, 5},
	{2, 7, 14, 13, 6},
	{3, 8, 16, 15, 7},
	{4, 9, 18, 17, 8},

	{20, 25, 21, 11, 10},
	{26, 21, 12, 13, 22},
	{27, 22, 14, 15, 23},
	{28, 23, 16, 17, 24},
	{29, 24, 18, 19, 20},

	{25, 26, 27, 28, 29},
}

// Triples are the twenty groups of three faces meeting at one vertex.
var Triples = [20][3]int{
	{0, 1, 5},
	{1, 2, 6},
	{2, 3, 7},
	{3, 4, 8},
	{4, 0, 9},

	{5, 10, 11},
	{6, 12, 13},
	{7, 14, 15},
	{8, 16, 17},
	{9, 18, 19},

	{20, 19, 10},
	{21, 11, 12},
	{22, 13, 14},
	{23, 15, 16},
	{24, 17, 18},

	{20, 25, 29},
	{21, 26, 25},
	{22, 27, 26},
	{23, 28, 27},
	{24, 29, 28},
}

// Halos are the five faces ringing each star, in Stars order.
var Halos = [12][5]int{
	{5, 6, 7, 8, 9},

	{4, 1, 11, 20, 18},
	{0, 2, 13, 21, 10},
	{1, 3, 15, 22, 12},
	{2, 4, 17, 23, 14},
	{3, 0, 19, 24, 16},

	{29, 26, 12, 5, 19},
	{25, 27, 14, 6, 11},
	{26, 28, 16, 7, 13},
	{27, 29, 18, 8, 15},
	{28, 25, 10, 9, 17},

	{20, 21, 22, 23, 24},
}

// Equators are the six bands of ten faces that split the rig into hemispheres.
// The first is horizontal.
var Equators = [6][10]int{
	{10, 11, 12, 13, 14, 15, 16, 17, 18, 19},

	{3, 8, 17, 24, 29, 25, 21, 12, 6, 2},
	{4, 9, 19, 20, 25, 26, 22, 14, 7, 3},
	{0, 5, 11, 21, 26, 27, 23, 16, 8, 4},
	{1, 6, 13, 22, 27, 28, 24, 18, 9, 0},
	{2, 7, 15, 23, 28, 29, 20, 10, 5, 1},
}

// Ring identifies a horizontal band of faces, bottom to top.
type Ring int

const (
	LowerStar Ring = iota
	LowerDiagonal
	MiddleRing
	UpperDiagonal
	UpperStar
)

var ringNames = [...]string{"lower_star", "lower_diagonal", "middle_ring", "upper_diagonal", "upper_star"}

func (r Ring) String() string {
	if r < 0 || int(r) >= len(ringNames) {
		return "unknown"
	}
	return ringNames[r]
}

// Rings lists the faces of each ring in face order.
var Rings = [5][]int{
	LowerStar:     {0, 1, 2, 3, 4},
	LowerDiagonal: {5, 6, 7, 8, 9},
	MiddleRing:    {10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
	UpperDiagonal: {20, 21, 22, 23, 24},
	UpperStar:     {25, 26, 27, 28, 29},
}

// RingOf returns the ring a face belongs to.
func RingOf(face int) Ring {
	switch {
	case face < 5:
		return LowerStar
	case face < 10:
		return LowerDiagonal
	case face < 20:
		return MiddleRing
	case face < 25:
		return UpperDiagonal
	default:
		return UpperStar
	}
}
