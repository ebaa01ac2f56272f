package cabac

// mn is one (m, n) initialization-coefficient row consumed by clause
// 9.3.1.1's preCtxState formula.
type mn struct {
	m, n int
}

// mnTableI holds the (m, n) initialization coefficients (Table 9-12
// through 9-33 in shape) for I/SI slices: one row per ctxIdx.
//
// See DESIGN.md's "Context model and tables" entry for this table's
// provenance and the verification gap this environment could not close
// (no reference bitstream or primary ITU-T text available to check
// against).
var mnTableI = [numContexts]mn{
	{58, -26}, {-1, 82}, {-31, 103}, {-63, 13}, {32, 13}, {-39, 38}, {-18, 57}, {-46, -4},
	{-5, -109}, {-12, -115}, {-60, 16}, {51, 91}, {5, -3}, {-41, -60}, {59, 82}, {30, -117},
	{17, 38}, {56, -29}, {56, -68}, {48, -4}, {-15, 120}, {-40, -7}, {-60, -110}, {54, 56},
	{62, 12}, {-39, 30}, {33, -11}, {22, 86}, {47, 29}, {-55, 113}, {30, -66}, {30, 0},
	{-45, 89}, {59, 50}, {60, -103}, {-46, -106}, {-59, -19}, {-43, -73}, {-48, 77}, {11, 8},
	{-62, -49}, {7, -43}, {-63, -46}, {-53, -7}, {-59, 5}, {56, -91}, {-59, 22}, {5, 96},
	{8, -79}, {61, -92}, {-30, 22}, {27, 107}, {-21, 111}, {-23, 56}, {-23, 22}, {-46, 5},
	{-47, -127}, {-37, -79}, {28, -85}, {22, 74}, {-55, 38}, {-11, -89}, {38, 60}, {54, 81},
	{51, 103}, {33, -83}, {-48, 1}, {23, 64}, {9, 53}, {52, -37}, {43, 50}, {-6, -30},
	{-41, 1}, {42, -31}, {-6, -99}, {36, -110}, {13, 45}, {-21, -56}, {59, -115}, {47, -121},
	{58, -128}, {-1, -104}, {-28, 96}, {60, -58}, {-31, 113}, {-23, 73}, {-59, 58}, {-63, -99},
	{-59, 47}, {-61, -76}, {-55, 96}, {17, -81}, {9, -80}, {-17, 30}, {39, 11}, {-15, 0},
	{-31, -72}, {42, 54}, {63, 36}, {-30, 67}, {13, -118}, {-27, -108}, {-13, 65}, {-36, 63},
	{44, 102}, {2, -87}, {51, -85}, {19, 102}, {14, 37}, {60, 97}, {48, 14}, {-59, 34},
	{59, -85}, {-20, -38}, {16, -78}, {-31, 72}, {1, 37}, {-10, 11}, {15, 105}, {55, -107},
	{-23, -99}, {38, -85}, {13, -105}, {59, -74}, {-1, -61}, {62, -36}, {7, 75}, {17, -102},
	{6, 72}, {63, 51}, {-3, 40}, {44, 76}, {-2, 116}, {60, 54}, {4, 98}, {-15, -86},
	{-53, 49}, {52, -23}, {-20, -10}, {-17, -73}, {39, -54}, {-33, 108}, {1, 8}, {-38, 74},
	{-18, -79}, {-7, 55}, {-44, -20}, {31, -114}, {-17, 53}, {-50, -17}, {45, 47}, {-7, 35},
	{-8, -58}, {44, -115}, {30, 8}, {-53, 117}, {24, 74}, {22, 84}, {-7, -39}, {-9, 89},
	{31, 87}, {52, 75}, {-19, -81}, {19, -95}, {-9, 123}, {-12, 92}, {-54, -32}, {46, 114},
	{56, 122}, {-2, 124}, {-57, 9}, {57, -60}, {6, 51}, {-1, 63}, {-8, -8}, {-20, 3},
	{-39, -15}, {-29, 74}, {20, 98}, {-34, 110}, {51, 9}, {-18, -2}, {21, 52}, {14, 20},
	{-26, 1}, {-42, 77}, {-61, -102}, {-49, 56}, {-37, -75}, {53, 70}, {53, 70}, {-10, 33},
	{-46, -9}, {-7, -116}, {53, 40}, {2, 75}, {45, -11}, {-57, 29}, {57, 96}, {5, -8},
	{-48, 34}, {-2, 47}, {24, 117}, {-13, 32}, {-22, -53}, {30, -68}, {-21, 77}, {18, -102},
	{14, 43}, {56, -25}, {58, -108}, {-46, 33}, {61, 31}, {-18, -122}, {61, -25}, {-57, -16},
	{6, -15}, {-30, -26}, {50, 25}, {48, 77}, {1, -47}, {40, 94}, {-19, 112}, {39, -65},
	{31, 29}, {-24, -97}, {-28, 11}, {10, -7}, {-28, -123}, {49, -21}, {-43, -117}, {14, -101},
	{-41, 38}, {7, 39}, {18, -54}, {25, -17}, {16, 71}, {5, 93}, {-9, -81}, {16, -62},
	{-24, 31}, {-20, -33}, {8, 111}, {-29, -22}, {13, -105}, {-16, 37}, {-28, 111}, {-4, 114},
	{30, -87}, {-53, -50}, {11, -8}, {49, -33}, {-43, -38}, {-40, -36}, {1, -84}, {-46, 125},
	{0, 18}, {1, -44}, {9, 52}, {26, 36}, {58, -52}, {-9, 4}, {-18, -6}, {-2, -83},
	{44, -88}, {-10, -36}, {-43, 12}, {-13, -59}, {46, -98}, {-41, -65}, {46, 48}, {63, -118},
	{-27, 46}, {-21, 6}, {-23, 19}, {-51, 33}, {-57, -34}, {30, -102}, {16, 22}, {-59, -35},
	{26, -73}, {61, 29}, {-13, 35}, {58, 24}, {27, 120}, {10, 72}, {-51, -19}, {-19, -6},
	{31, -35}, {-33, 109}, {56, 104}, {48, 82}, {-35, -20}, {-47, 5}, {7, -121}, {5, -23},
	{-6, 88}, {-20, -64}, {22, 4}, {49, 121}, {-18, -98}, {-64, 95}, {1, 108}, {58, 4},
	{29, 26}, {-51, 109}, {-51, 47}, {-31, 116}, {-21, 122}, {11, -42}, {50, 6}, {21, -76},
	{-2, -124}, {-62, 111}, {-30, 51}, {13, -102}, {-38, 15}, {-57, -27}, {40, 105}, {5, -78},
	{30, -19}, {61, -59}, {62, 74}, {-27, 30}, {20, 31}, {-55, -88}, {-55, -34}, {-64, -33},
	{-60, -110}, {24, 106}, {-38, -34}, {-61, 76}, {33, -69}, {-41, 84}, {-46, 57}, {53, 41},
	{56, -96}, {28, 25}, {-29, 0}, {36, -18}, {-63, 74}, {-30, 38}, {-34, 113}, {54, 103},
	{-35, 19}, {-43, -4}, {23, -51}, {33, -43}, {-6, 55}, {48, 12}, {-22, -106}, {-2, -125},
	{58, 97}, {63, -111}, {41, 48}, {-46, -41}, {59, 56}, {-56, -74}, {26, 54}, {37, 91},
	{-19, -122}, {45, 28}, {-4, -20}, {35, -15}, {-38, -52}, {14, -46}, {-26, -79}, {-59, -97},
	{54, -89}, {-25, -24}, {-25, 68}, {32, 44}, {-8, 15}, {-16, -37}, {-63, -24}, {22, -81},
	{-55, 82}, {-61, 34}, {44, 16}, {-43, -16}, {13, 0}, {-48, 87}, {22, -38}, {-16, 42},
	{-50, 59}, {-13, -24}, {-44, 103}, {-49, 110}, {2, -53}, {-49, 40}, {57, -50}, {50, 60},
	{-1, -82}, {-50, 19}, {-23, -61}, {10, -108}, {9, -118}, {49, 83}, {-10, -12}, {-30, 53},
	{56, 60}, {-29, 52}, {30, -49}, {58, -125}, {-32, -106}, {29, -125}, {2, 88}, {54, -115},
	{-35, 60}, {-37, -91}, {56, -124}, {27, 43}, {53, 29}, {26, 111}, {39, -70}, {8, -34},
	{45, -23}, {23, 11}, {-61, -51}, {-58, -56}, {-58, -41}, {12, -85}, {24, 114}, {-7, 36},
	{-20, 47}, {41, 71}, {-40, 64}, {-56, -125}, {-32, 104}, {-42, -114}, {11, 67}, {28, -78},
	{62, 8}, {-10, -119}, {-50, -84}, {-43, 38}, {40, -125}, {53, 25}, {53, 0}, {-2, 2},
	{-1, 73}, {-45, 42}, {-20, -98}, {-20, 99}, {-56, -110}, {43, -115}, {-29, 80}, {9, 69},
	{-23, -106}, {18, -80}, {22, -101}, {30, 53}, {17, 51}, {59, 30}, {-58, -7}, {42, 37},
	{-13, -87}, {-50, 61}, {-34, -66}, {6, -47}, {-57, 117}, {16, 73}, {35, 0}, {43, -116},
	{23, 34}, {-26, -61}, {-25, -90}, {-59, 28}, {-45, 106}, {51, 78}, {3, 82}, {16, -106},
	{-23, 118}, {-35, -98}, {-17, 107}, {11, -19}, {-20, -124}, {-19, -22}, {-56, 53}, {-56, 57},
	{17, 81}, {32, 39}, {28, -69}, {-60, -40}, {31, -90}, {35, 57}, {22, 73}, {7, 69},
	{30, 126}, {-6, 77}, {28, -48}, {-28, -70}, {1, -41}, {-21, -30}, {-29, -1}, {36, -107},
	{-32, -114}, {-5, 32}, {-60, -22}, {26, 60}, {15, 12}, {-26, 42}, {62, 28}, {53, -1},
	{-10, -28}, {29, 12}, {6, 126}, {-54, 28}, {-64, -59}, {-63, 56}, {3, 32}, {7, 26},
	{-17, 51}, {19, -26}, {45, -22}, {21, 100}, {-50, -64}, {-15, 58}, {-26, -63}, {22, -83},
	{-11, 4}, {44, 49}, {-55, 49}, {-51, -30}, {25, 96}, {41, 70}, {47, 77}, {-33, -54},
	{-47, -109}, {6, -109}, {54, 1}, {26, 43}, {-44, -33}, {-58, -7}, {53, 25}, {-63, 79},
	{-61, 59}, {-44, 83}, {25, -87}, {-51, 23}, {-48, 80}, {-61, 57}, {-38, 32}, {37, -85},
	{-16, 0}, {-27, 97}, {46, 98}, {4, -44}, {-40, 59}, {38, 124}, {28, -31}, {-28, 0},
	{-54, -36}, {27, -75}, {50, 7}, {-50, -104}, {6, -19}, {-10, -62}, {-2, -27}, {-15, 63},
	{41, 91}, {36, 91}, {-20, -62}, {10, 114}, {23, 87}, {-53, -61}, {-2, 109}, {6, 69},
	{-18, -11}, {3, 107}, {40, -66}, {60, 71}, {20, 48}, {-52, -125}, {33, 0}, {32, 91},
	{-16, 90}, {-37, 80}, {52, -18}, {32, 93}, {59, -56}, {-55, -102}, {-17, 104}, {34, -112},
	{-11, 18}, {32, -79}, {5, 31}, {1, 9}, {18, -84}, {4, -90}, {26, 122}, {-41, -52},
	{25, -103}, {54, 74}, {-34, -7}, {51, 55}, {15, -95}, {-32, 58}, {45, -37}, {39, 84},
	{-39, -82}, {52, 115}, {45, 23}, {-38, 115}, {-47, -74}, {0, -83}, {52, 43}, {-1, 39},
	{-59, -107}, {31, 87}, {60, 112}, {-18, -74}, {55, -27}, {47, -5}, {56, -12}, {51, -70},
	{24, 44}, {37, -51}, {18, 55}, {43, -103}, {10, 82}, {-57, 16}, {-57, 6}, {59, -64},
	{20, -70}, {-47, -123}, {15, 109}, {32, 77}, {-57, -58}, {9, -57}, {60, 42}, {6, -106},
	{-5, 60}, {-59, 114}, {-39, -68}, {-9, 85}, {62, 127}, {-15, -98}, {14, 104}, {-5, -100},
	{27, 32}, {43, -122}, {-9, 76}, {-52, 111}, {-52, -52}, {55, -116}, {-4, 90}, {36, 93},
	{52, -9}, {-20, 75}, {29, -57}, {39, 54}, {2, 117}, {28, -46}, {5, -74}, {33, 61},
	{17, -87}, {39, 13}, {28, -51}, {1, 54}, {40, -42}, {-17, 59}, {30, 123}, {-34, -84},
	{-12, -122}, {-31, -39}, {-41, -19}, {-54, 106}, {-24, -73}, {58, 60}, {-63, -53}, {-15, -5},
	{49, 40}, {-39, -21}, {7, 95}, {32, -68}, {47, 124}, {11, 4}, {-4, -120}, {-62, -120},
	{-60, 9}, {-13, -103}, {8, -7}, {21, 124}, {-31, 114}, {-50, -2}, {-23, 63}, {-40, 123},
	{-32, 23}, {-38, 123}, {-38, 69}, {-58, 110}, {-10, 112}, {-51, -66}, {16, -78}, {4, -13},
	{-9, -104}, {-33, -27}, {-1, 5}, {-8, 65}, {-21, 35}, {12, -3}, {47, -96}, {-29, -96},
	{19, -24}, {17, -119}, {-17, 78}, {-19, -126}, {30, -102}, {44, -14}, {43, -123}, {-55, -118},
	{-50, 43}, {6, -107}, {36, 96}, {59, -64}, {27, 80}, {11, -4}, {-58, 47}, {-43, -96},
	{-39, -111}, {35, -15}, {-62, 118}, {38, -125}, {-6, -81}, {-6, 103}, {41, 26}, {-29, 16},
	{-60, 29}, {37, -48}, {28, 68}, {-31, 78}, {6, 80}, {32, -43}, {-3, 53}, {-45, -57},
	{-48, 105}, {-53, -82}, {34, -57}, {-25, 64}, {-54, 110}, {63, -16}, {28, 68}, {-26, 25},
	{11, -81}, {-36, -74}, {4, 74}, {-9, -113}, {17, -31}, {-26, 105}, {37, -102}, {-29, 112},
	{-41, 98}, {-49, -111}, {4, 77}, {-53, -89}, {11, -18}, {21, 44}, {-41, -94}, {-12, -25},
	{-43, 13}, {-6, -107}, {42, 87}, {-63, -11}, {56, 71}, {19, 12}, {-19, -63}, {-28, -73},
	{15, 31}, {-39, 1}, {-39, -33}, {41, -120}, {34, 41}, {-55, 49}, {-35, 94}, {-37, 62},
	{-39, -118}, {-34, -86}, {-15, 49}, {-59, 123}, {13, -115}, {27, 28}, {30, 35}, {54, -1},
	{-26, -17}, {3, -86}, {41, 32}, {-20, 125}, {-2, 61}, {33, 102}, {-30, 4}, {-10, 108},
	{-23, -54}, {-13, 116}, {-24, -112}, {-57, 123}, {60, 124}, {-24, 70}, {-63, -5}, {41, 9},
	{48, -89}, {-27, 87}, {-31, 98}, {46, 69}, {-18, 113}, {-18, 105}, {50, -36}, {60, 76},
	{-52, 126}, {14, 77}, {42, 38}, {-19, 107}, {-30, 112}, {5, 118}, {-36, -99}, {1, -90},
	{27, 50}, {43, 39}, {-64, -113}, {-1, -10}, {-40, -90}, {11, 78}, {-13, 8}, {-49, 115},
	{-2, -66}, {-34, 108}, {-62, 68}, {-4, 125}, {41, -97}, {-37, 106}, {-8, 57}, {-21, -122},
	{48, 113}, {-3, 99}, {-60, -116}, {-19, 30}, {-22, 96}, {-64, 96}, {4, 60}, {63, -1},
	{-49, -128}, {-7, -113}, {-23, -89}, {-28, -38}, {-55, -89}, {-47, -79}, {58, -76}, {-64, -99},
	{6, -113}, {62, -115}, {54, -1}, {34, 28}, {33, 11}, {-46, 14}, {56, -120}, {8, -80},
	{56, -26}, {-46, -5}, {-8, -92}, {50, -54}, {7, -110}, {1, -32}, {-63, -115}, {16, 88},
	{56, -126}, {49, 71}, {-51, 101}, {40, 8}, {0, 118}, {43, 33}, {49, -126}, {-40, -117},
	{-34, 119}, {-49, -99}, {36, 109}, {13, 29}, {-18, -9}, {-52, -126}, {52, 51}, {0, 76},
	{20, 36}, {10, 92}, {54, -71}, {11, 51}, {-16, -99}, {-39, 107}, {37, 119}, {46, 125},
	{-43, -10}, {17, 96}, {-40, -82}, {-12, -5}, {55, 66}, {61, -113}, {19, 108}, {34, 115},
	{-51, 23}, {31, -72}, {-46, 10}, {-31, 73}, {-49, 27}, {-42, 115}, {44, -37}, {34, 1},
	{31, -49}, {45, 78}, {-56, 0}, {-37, -13}, {-40, -95}, {29, 49}, {-60, -58}, {-11, -55},
	{0, -122}, {-39, -36}, {39, 41}, {-15, -127}, {-49, 110}, {34, 45}, {-40, -4}, {-2, 14},
	{37, -112}, {11, -126}, {38, 16}, {23, -77}, {63, 126}, {-20, 55}, {-41, 77}, {-34, -103},
	{-1, -106}, {-3, -88}, {22, 95}, {-18, -25}, {54, 41}, {-56, -126}, {51, -60}, {22, 97},
	{20, -24}, {25, -31}, {-32, -22}, {58, -115}, {27, -5}, {-11, -53}, {60, 39}, {-1, -51},
	{-40, 56}, {-13, -101}, {-27, 119}, {-26, 21}, {-38, 11}, {44, -43}, {-63, 43}, {44, -13},
	{-8, -54}, {25, 81}, {56, -107}, {-58, -123}, {-27, -63}, {39, 122}, {-44, 105}, {-22, 64},
	{-1, 12}, {-54, -127}, {-11, 10}, {26, 49}, {-54, 32}, {-28, -61}, {22, -107}, {10, 24},
	{54, 82}, {-53, 126}, {54, -124}, {17, 21}, {-56, -56}, {14, 96}, {-39, -34}, {63, -46},
	{20, 91}, {12, 79}, {58, -28}, {28, -34}, {-49, 68}, {-53, 44}, {59, -42}, {34, -15},
	{-47, -104}, {24, 1}, {-24, -72}, {-53, 113}, {-5, -62}, {60, 119}, {-15, -39}, {-43, 6},
	{-35, -88}, {52, -70}, {25, 31}, {32, 9}, {-39, -48}, {24, -123}, {-41, 26}, {30, -7},
	{1, -53}, {-64, -115}, {31, 81}, {0, 43}, {21, 107}, {45, 78}, {48, 83}, {-34, 76},
	{-25, -68}, {-24, -61}, {10, -6}, {45, 101}, {61, -1}, {-31, 45}, {-50, 122}, {7, 36},
	{-43, 57}, {-39, -33}, {-38, -6}, {22, 74}, {-21, -127}, {-52, 43}, {15, 12}, {-16, -117},
}

// mnTablePB holds the three cabac_init_idc rows of (m, n)
// initialization coefficients for P/SP/B slices.
var mnTablePB = [3][numContexts]mn{
	{
	{-10, -54}, {41, -9}, {47, 63}, {48, 82}, {-11, 109}, {49, -35}, {38, -94}, {-52, 0},
	{-28, 88}, {-43, 17}, {50, 80}, {52, 53}, {-41, 104}, {30, 27}, {5, 122}, {-54, -83},
	{-51, 35}, {-10, -78}, {15, -67}, {8, 17}, {-59, 38}, {-64, 56}, {-13, 26}, {-55, 95},
	{19, 97}, {-64, -76}, {-8, 41}, {-2, 61}, {-8, 110}, {46, -23}, {-12, 30}, {-23, 120},
	{41, 13}, {5, 4}, {19, -110}, {-21, 52}, {-6, 2}, {-35, 64}, {14, 41}, {-37, -81},
	{-8, 123}, {5, 14}, {-59, 125}, {39, -30}, {3, 102}, {5, 37}, {-44, 10}, {9, 72},
	{24, -63}, {14, -20}, {-1, -126}, {17, -77}, {42, -14}, {-37, 18}, {-17, 93}, {7, 37},
	{-39, 27}, {-41, -56}, {16, -21}, {21, 95}, {47, -53}, {42, -92}, {6, -84}, {-6, -80},
	{24, 2}, {12, -95}, {-57, 29}, {11, 12}, {-3, -22}, {-15, 121}, {28, -31}, {28, -107},
	{-62, -13}, {-57, 66}, {-5, -35}, {-60, -79}, {19, -36}, {8, 10}, {-41, -41}, {23, 90},
	{-25, -44}, {15, 73}, {24, -121}, {39, 40}, {5, 18}, {-1, -94}, {-5, -53}, {-24, -47},
	{-38, -47}, {-36, -62}, {56, 46}, {-40, 42}, {-25, 52}, {-14, -117}, {19, -98}, {-16, -35},
	{-56, -104}, {-48, 19}, {-24, -2}, {-36, 61}, {-17, -62}, {61, -10}, {-35, 100}, {-61, 118},
	{-35, -32}, {-23, 0}, {26, -93}, {11, 66}, {-13, -59}, {6, 22}, {23, 66}, {-21, 51},
	{8, 16}, {-29, 34}, {-7, 53}, {26, 0}, {-4, 27}, {-10, -60}, {-57, 76}, {19, 42},
	{-60, -3}, {54, 69}, {-20, -97}, {-28, 105}, {-19, 72}, {28, 96}, {-51, -93}, {-29, 14},
	{14, -121}, {8, -112}, {-59, -8}, {-5, 73}, {32, -120}, {52, -80}, {56, -61}, {-13, -60},
	{46, -75}, {-36, 65}, {-37, 116}, {43, 36}, {12, 0}, {1, -105}, {-42, 114}, {20, 96},
	{-37, 92}, {-15, -39}, {-7, -58}, {-35, -108}, {15, -112}, {26, -128}, {-5, 85}, {-2, 27},
	{62, -24}, {62, 35}, {32, -36}, {-14, 78}, {55, -78}, {37, -7}, {-50, 110}, {36, -27},
	{-8, 45}, {48, 43}, {17, 121}, {37, 21}, {61, 1}, {21, 118}, {52, 16}, {-15, -1},
	{-40, -43}, {-35, 95}, {37, -127}, {22, 76}, {-54, 127}, {28, -40}, {1, -108}, {-34, -47},
	{20, 70}, {-12, -6}, {14, -56}, {-57, 42}, {-28, -77}, {49, 102}, {28, 94}, {16, 43},
	{17, -104}, {11, -91}, {-50, -127}, {-58, -89}, {-23, 46}, {-8, 41}, {33, 34}, {-13, 29},
	{-37, -101}, {-37, -59}, {55, 13}, {-57, -117}, {62, 23}, {32, 27}, {-17, 125}, {34, -21},
	{-62, -58}, {22, -96}, {10, 59}, {57, -125}, {-29, 30}, {25, -21}, {4, 125}, {39, -113},
	{34, 33}, {-1, -49}, {-50, 67}, {63, 24}, {-49, 89}, {38, 99}, {-38, 66}, {35, -76},
	{62, 42}, {51, -81}, {59, -49}, {39, -7}, {-25, -97}, {15, 25}, {-17, 30}, {-45, -102},
	{-43, -45}, {-1, -119}, {50, 66}, {-50, 6}, {55, -62}, {-64, 60}, {60, 96}, {52, -123},
	{34, -75}, {5, -64}, {51, -42}, {-8, -68}, {-62, 69}, {-13, 14}, {52, -52}, {56, -13},
	{-10, 125}, {-3, 81}, {-31, -7}, {-49, -102}, {-26, -50}, {-43, 7}, {-53, 127}, {7, 22},
	{46, 8}, {3, -87}, {3, -127}, {19, -82}, {2, -93}, {-9, 36}, {-14, 12}, {56, -104},
	{54, 57}, {-4, 113}, {55, -98}, {-25, 39}, {-2, -19}, {57, -95}, {-47, 108}, {1, 115},
	{-51, 26}, {-41, -67}, {-2, 80}, {62, -18}, {-2, 27}, {-3, 92}, {29, 90}, {47, -90},
	{-19, -126}, {40, 120}, {-10, -34}, {-9, 107}, {-25, 83}, {14, 101}, {-24, 34}, {-60, 27},
	{-56, 1}, {57, 47}, {63, -1}, {-41, 86}, {-5, -45}, {27, -127}, {46, -51}, {43, -50},
	{-63, -74}, {34, -26}, {58, 72}, {49, -93}, {-54, 4}, {21, -102}, {5, -119}, {-29, -32},
	{-29, -8}, {-52, 80}, {-55, 109}, {21, -97}, {-64, 123}, {-27, 69}, {27, -22}, {18, -101},
	{-31, -45}, {58, 6}, {31, -68}, {6, -115}, {52, 96}, {3, -42}, {48, 52}, {7, -80},
	{-56, 109}, {61, -8}, {-26, 115}, {29, -81}, {60, 5}, {19, 84}, {-28, -1}, {1, 10},
	{54, -126}, {17, 125}, {-32, -27}, {-58, -47}, {55, 40}, {-2, 10}, {22, 48}, {28, -18},
	{54, 54}, {18, -37}, {-58, 35}, {-35, -115}, {-46, 97}, {-4, -106}, {-23, -94}, {31, -100},
	{-59, -106}, {21, 115}, {-22, 12}, {9, -95}, {22, -62}, {13, -18}, {19, 79}, {35, 35},
	{-2, -94}, {-17, 65}, {-57, 39}, {-52, -88}, {31, -8}, {-3, -111}, {32, -35}, {53, 13},
	{-12, 61}, {-57, 79}, {-4, 89}, {54, 40}, {61, 43}, {42, 115}, {-55, -22}, {44, -92},
	{-5, -49}, {60, -2}, {9, 80}, {-12, -25}, {42, 18}, {40, 16}, {-55, 1}, {26, -107},
	{-9, 2}, {-19, -50}, {-9, -21}, {58, -38}, {63, -28}, {3, -102}, {55, -18}, {58, 36},
	{-37, 30}, {1, -53}, {27, 108}, {-4, -89}, {42, 112}, {-39, -98}, {16, -116}, {-36, 98},
	{41, 5}, {41, -64}, {49, 53}, {50, 9}, {-53, 70}, {56, -102}, {-6, -83}, {26, 42},
	{45, -104}, {-7, 11}, {6, 3}, {-3, -15}, {-19, 36}, {-26, 6}, {8, -62}, {-60, 116},
	{-45, -67}, {63, -99}, {30, -101}, {63, -20}, {-57, -13}, {25, 95}, {2, 108}, {4, -55},
	{9, 86}, {37, -54}, {45, -89}, {-12, 59}, {-33, -49}, {28, 45}, {-48, 18}, {-48, -55},
	{-43, 7}, {52, -24}, {-13, -75}, {29, 33}, {-40, 91}, {0, -23}, {21, 45}, {50, 44},
	{-10, 59}, {50, 59}, {17, -124}, {-31, 63}, {46, 77}, {2, -61}, {63, 21}, {-27, -123},
	{12, 20}, {-7, -30}, {17, 101}, {56, 92}, {40, 74}, {-39, 14}, {-37, -85}, {-33, 9},
	{-25, 12}, {31, 68}, {4, 85}, {-38, 45}, {18, -66}, {-37, -123}, {-35, 53}, {4, 28},
	{-54, 14}, {-39, 82}, {-26, 114}, {45, 38}, {51, 107}, {27, -118}, {-53, 43}, {63, -63},
	{-22, -3}, {46, 117}, {6, -5}, {-61, 27}, {2, 61}, {-45, 63}, {-53, -63}, {1, -32},
	{-25, -28}, {-12, -118}, {44, -24}, {26, 118}, {17, -32}, {51, -49}, {-9, 8}, {63, -27},
	{-11, 112}, {29, 126}, {-39, -20}, {-55, -110}, {-28, -44}, {-41, 92}, {-54, 126}, {55, -96},
	{44, 35}, {10, -5}, {6, -19}, {33, -78}, {35, -82}, {-63, -123}, {54, -37}, {55, -115},
	{-7, -24}, {27, 97}, {-44, -118}, {-14, -113}, {-28, 126}, {36, -82}, {-2, -71}, {-27, 109},
	{-21, 62}, {52, 26}, {-16, -100}, {50, -110}, {-19, 71}, {-37, 109}, {-13, -45}, {-58, 2},
	{-32, -68}, {61, -15}, {12, 43}, {-33, 69}, {24, -90}, {-4, -126}, {5, -96}, {50, 36},
	{-20, 99}, {-44, 119}, {-23, 52}, {32, -7}, {-36, -6}, {20, -79}, {-1, -36}, {4, 121},
	{-50, 16}, {35, 7}, {44, 108}, {1, 120}, {22, 31}, {18, -119}, {-44, -86}, {-2, -23},
	{-30, 5}, {38, -65}, {38, -116}, {61, -124}, {-60, 62}, {23, 123}, {5, -56}, {-64, -25},
	{34, -67}, {-37, 122}, {-12, -16}, {-2, 36}, {3, -125}, {23, 125}, {-59, -12}, {44, 59},
	{-16, -117}, {-56, -20}, {20, -99}, {60, 78}, {51, 35}, {-21, -86}, {-46, 120}, {32, 13},
	{-10, -114}, {-12, -49}, {11, 76}, {54, 113}, {-30, 120}, {-9, -101}, {54, -46}, {-31, -62},
	{22, 22}, {-36, -83}, {-23, -98}, {60, 122}, {54, 122}, {23, 34}, {-18, 47}, {-31, -115},
	{-57, -82}, {-24, -84}, {2, -106}, {1, 20}, {-54, 48}, {10, 81}, {-28, -117}, {-40, 108},
	{21, 79}, {6, 73}, {-16, -36}, {37, -33}, {-15, -30}, {18, -28}, {-10, 77}, {17, 13},
	{-26, -59}, {1, -64}, {-58, 6}, {-31, 8}, {-27, -120}, {45, 16}, {-6, 103}, {-28, -101},
	{43, -125}, {17, -14}, {-39, 21}, {49, 89}, {52, -14}, {32, 69}, {14, 27}, {63, 72},
	{38, 6}, {29, -35}, {25, 96}, {51, -87}, {-50, 63}, {-50, -30}, {-37, -109}, {32, -92},
	{-11, 29}, {41, -60}, {-21, -5}, {-33, -100}, {62, 51}, {13, 86}, {37, 14}, {-9, 26},
	{-51, -27}, {27, -61}, {-1, 98}, {-57, -10}, {-57, 73}, {36, -87}, {-50, 98}, {45, 69},
	{-47, -10}, {44, 52}, {13, -42}, {-32, 34}, {26, -89}, {49, -9}, {16, -123}, {6, -123},
	{44, 62}, {-26, 60}, {57, 106}, {-45, 44}, {-42, 23}, {6, -86}, {32, 31}, {49, 73},
	{-61, 119}, {-42, -43}, {-34, 18}, {-13, -86}, {-29, -113}, {27, -12}, {62, 67}, {-54, -107},
	{47, -7}, {59, -15}, {33, -69}, {26, 88}, {44, 48}, {43, 73}, {23, 28}, {17, 0},
	{21, -16}, {-61, -54}, {9, 118}, {30, -39}, {13, 28}, {-1, -54}, {-42, 29}, {-24, -50},
	{16, 80}, {-3, -60}, {-36, -117}, {-49, -7}, {35, 70}, {56, 69}, {-17, 2}, {-15, -75},
	{4, -29}, {-21, 10}, {20, 75}, {-17, -103}, {35, 21}, {37, 52}, {18, 74}, {-50, 109},
	{24, 51}, {10, -91}, {-43, 55}, {-43, -58}, {-25, 77}, {32, -112}, {29, 60}, {28, 25},
	{-31, 49}, {-7, 108}, {52, -108}, {-24, -80}, {39, 97}, {-15, -85}, {47, -95}, {19, 50},
	{-21, -91}, {-56, 18}, {-41, -91}, {52, 114}, {6, -102}, {-13, 34}, {-5, 127}, {-2, -105},
	{32, 48}, {43, -67}, {-11, 47}, {-17, -39}, {23, -43}, {56, -60}, {42, 29}, {-64, -70},
	{-17, -23}, {58, 58}, {35, 83}, {42, 9}, {31, -53}, {61, 32}, {-29, -5}, {17, -46},
	{-9, 1}, {27, -111}, {16, -55}, {49, 86}, {6, 27}, {-60, 42}, {13, 103}, {-23, 19},
	{4, -123}, {-29, 61}, {-56, -13}, {-30, 2}, {4, -126}, {-45, -115}, {43, 8}, {49, -80},
	{23, 113}, {-24, -79}, {0, 112}, {-43, -119}, {-34, -66}, {21, 31}, {-45, 2}, {25, -39},
	{-11, -29}, {36, 89}, {-27, -88}, {28, -40}, {5, 73}, {31, 53}, {27, 17}, {-40, -123},
	{45, 125}, {9, 104}, {36, -53}, {2, -52}, {-39, -85}, {21, -112}, {58, 115}, {2, 111},
	{-20, 88}, {51, 68}, {32, 111}, {-8, 13}, {41, 62}, {15, -67}, {-40, -47}, {-17, -76},
	{10, 28}, {57, 84}, {8, 99}, {23, -58}, {63, 71}, {-7, 22}, {-11, -39}, {-64, 2},
	{-43, -122}, {-26, -6}, {42, 51}, {63, 28}, {-56, 5}, {-50, -68}, {3, -48}, {-12, -8},
	{61, -85}, {33, -33}, {61, 63}, {30, -96}, {8, -94}, {11, -80}, {-13, -115}, {-35, 56},
	{36, 24}, {4, 3}, {-7, -109}, {-63, 118}, {12, -69}, {42, 95}, {-26, 79}, {0, 55},
	{48, 28}, {-36, 89}, {12, -25}, {35, -28}, {38, -116}, {10, -89}, {-31, 117}, {56, -82},
	{-41, 41}, {-22, -33}, {44, -86}, {52, -48}, {-3, 127}, {-44, 38}, {21, 0}, {29, -42},
	{40, -95}, {4, 38}, {42, -26}, {-32, 127}, {34, -93}, {-12, 63}, {52, 116}, {10, 68},
	{-53, -39}, {-5, 40}, {-17, 97}, {-56, 51}, {-39, 113}, {-15, -82}, {-1, -1}, {43, -28},
	{57, -104}, {-4, 106}, {20, 50}, {-62, 99}, {-4, 5}, {-61, 19}, {4, 91}, {48, 42},
	{-36, -111}, {-27, -12}, {36, 3}, {-25, 2}, {48, 94}, {-45, 14}, {24, -62}, {-1, 123},
	{-29, 20}, {18, -69}, {39, -83}, {-12, 97}, {-31, -80}, {25, -81}, {50, -25}, {42, 67},
	{19, 88}, {31, -26}, {23, 37}, {-49, -61}, {62, 23}, {0, -56}, {8, -59}, {46, 61},
	{-45, 31}, {24, -53}, {-44, 9}, {-58, -99}, {-11, -70}, {-10, 68}, {-61, 57}, {53, 16},
	{-3, -44}, {29, -53}, {-37, -29}, {-34, -87}, {58, 119}, {32, -98}, {30, -66}, {6, 6},
	{-61, -45}, {-22, 47}, {-51, 109}, {-45, 104}, {-40, 51}, {-28, -60}, {-15, 34}, {-20, 6},
	{30, 99}, {23, 112}, {57, 120}, {55, 89}, {-17, 31}, {-19, 28}, {-44, 16}, {38, 28},
	{-9, 30}, {51, -91}, {-4, -72}, {-35, 110}, {26, -92}, {-58, -78}, {-52, 19}, {62, -99},
	{-11, -39}, {-13, 101}, {62, -31}, {-8, 44}, {44, -58}, {-33, 53}, {62, -114}, {48, -38},
	{-50, 112}, {30, -102}, {-23, -90}, {-26, -106}, {8, 31}, {33, 31}, {-29, -83}, {41, 99},
	{10, 125}, {1, -91}, {-46, 77}, {-22, 102}, {56, -44}, {36, -75}, {-43, -99}, {-35, -104},
	{33, 3}, {-4, -63}, {-5, -97}, {30, 91}, {-27, 116}, {-20, 112}, {49, 13}, {62, 119},
	{56, 66}, {53, -41}, {-14, 40}, {22, -121}, {26, 50}, {22, 86}, {35, 31}, {-24, 49},
	{57, -72}, {0, 117}, {-28, -84}, {57, -52}, {-43, 17}, {34, 15}, {-64, -72}, {56, 14},
	{51, 62}, {17, -120}, {30, 110}, {53, -47}, {-35, 58}, {-49, -22}, {41, -89}, {-61, 116},
	{32, -119}, {0, -46}, {21, 48}, {54, 29}, {-47, -64}, {-11, -9}, {1, 106}, {-31, 63},
	{49, 63}, {-32, -110}, {-35, -49}, {-49, 24}, {18, -107}, {26, 92}, {53, -59}, {-8, -107},
	{-7, 56}, {-5, -22}, {11, -40}, {-48, -45}, {-6, 47}, {12, 83}, {7, 111}, {45, -98},
	{-17, -8}, {-39, -110}, {46, 64}, {-28, 88}, {58, -19}, {-15, 57}, {3, 62}, {-13, 68},
	{-4, -119}, {-35, -98}, {20, 80}, {28, -43}, {43, -81}, {-18, 13}, {-54, -53}, {24, -123},
	{5, -75}, {-61, -20}, {-47, 104}, {-6, -124}, {-2, -27}, {24, -85}, {-49, -44}, {6, -123},
	{40, 54}, {30, -83}, {-6, 10}, {-64, -100}, {-33, 0}, {-44, -122}, {-1, -113}, {57, -72},
	{16, 58}, {-13, 110}, {8, 123}, {22, -127}, {-34, -63}, {20, -48}, {36, -60}, {-2, -115},
	},
	{
	{-52, 125}, {32, -118}, {-11, 120}, {15, 122}, {13, 118}, {-44, -116}, {54, 106}, {17, 52},
	{-46, -72}, {23, -12}, {26, 31}, {-47, 67}, {46, 120}, {62, -48}, {-34, 104}, {-59, -84},
	{-63, -104}, {63, 120}, {19, 114}, {60, 87}, {47, 33}, {-5, -17}, {28, -124}, {13, -26},
	{16, 113}, {60, 92}, {-25, 18}, {48, 18}, {19, -58}, {30, -84}, {-27, 10}, {53, 25},
	{-6, 98}, {-20, -14}, {-61, 53}, {-37, 102}, {-36, 39}, {-1, -91}, {-11, 125}, {12, -126},
	{49, -18}, {14, -116}, {-37, -55}, {42, 124}, {-62, -124}, {-15, -72}, {-17, 89}, {5, -94},
	{-39, -69}, {37, -88}, {-24, 27}, {37, -3}, {53, 13}, {21, -75}, {34, -57}, {37, 27},
	{23, -63}, {31, -22}, {9, 80}, {-30, -73}, {-31, -1}, {52, -74}, {13, -46}, {-33, 3},
	{7, 85}, {-14, 97}, {20, 85}, {-27, 122}, {-28, -59}, {6, 55}, {-64, 95}, {-43, 100},
	{-6, 114}, {-52, 109}, {-61, -24}, {16, -9}, {53, 77}, {48, 10}, {-27, -127}, {-45, 25},
	{-17, -74}, {-28, -91}, {53, -117}, {-35, -124}, {-57, 115}, {-29, -52}, {-54, 96}, {39, -26},
	{-2, -78}, {-11, 124}, {44, 32}, {30, 24}, {19, -47}, {9, 98}, {44, 75}, {58, 104},
	{-52, -21}, {-7, -53}, {-9, 5}, {-23, -11}, {58, 7}, {-18, -18}, {-23, -47}, {-32, 50},
	{21, -66}, {-17, -120}, {-34, -77}, {41, 104}, {9, 9}, {-62, -84}, {53, 41}, {-59, -61},
	{-41, -106}, {-17, 120}, {18, -86}, {-38, 108}, {-51, -61}, {17, -107}, {-42, -18}, {53, 86},
	{-37, -46}, {16, 46}, {-31, -57}, {-7, 39}, {48, 15}, {-48, -79}, {2, -117}, {-34, 5},
	{-60, -13}, {-43, -31}, {-11, -82}, {58, -87}, {4, -79}, {-56, 32}, {-47, -113}, {19, 42},
	{34, 85}, {6, 42}, {-3, -31}, {34, -80}, {-14, -98}, {11, -91}, {59, 107}, {25, -97},
	{18, -43}, {-40, 106}, {-7, 89}, {-50, 17}, {-37, -48}, {-3, -105}, {-28, -91}, {-1, -83},
	{-49, -64}, {-61, 60}, {-38, 78}, {-42, -23}, {-25, -15}, {-2, -39}, {40, -25}, {26, 84},
	{-17, -75}, {-9, 28}, {-39, -69}, {-5, -85}, {-39, -53}, {-33, 47}, {-3, -90}, {56, 42},
	{55, -125}, {20, -106}, {3, -117}, {35, -76}, {-24, 40}, {-62, -7}, {28, -101}, {-41, -23},
	{53, 15}, {-51, 100}, {36, -27}, {38, -107}, {-45, 104}, {-52, 19}, {-59, 92}, {-34, -35},
	{-37, -33}, {-62, -71}, {-36, 65}, {-16, 120}, {-19, 49}, {-18, 31}, {-58, 103}, {36, 113},
	{33, -28}, {31, -115}, {-62, -127}, {-8, 59}, {58, -120}, {-22, -84}, {-61, -59}, {-16, -111},
	{-53, -57}, {13, -49}, {-55, 58}, {36, 98}, {-47, 27}, {-23, 28}, {-7, -73}, {24, -25},
	{50, -13}, {-34, -126}, {-30, -47}, {-13, -51}, {5, -115}, {38, 72}, {-61, -99}, {49, 39},
	{48, 114}, {20, -124}, {22, 118}, {28, 33}, {-21, -2}, {-57, 35}, {-15, 0}, {20, 6},
	{21, 31}, {43, -5}, {36, -23}, {20, 44}, {-21, -119}, {16, -69}, {-11, 25}, {26, -51},
	{18, 94}, {3, -70}, {8, 33}, {-32, 67}, {53, 4}, {4, 10}, {-32, 103}, {51, -96},
	{-1, 16}, {-39, -80}, {21, 40}, {-24, -102}, {36, -94}, {-56, 21}, {-12, 88}, {-52, -80},
	{-7, 92}, {62, -17}, {-1, 95}, {63, 119}, {31, 68}, {43, -82}, {56, -10}, {-50, 2},
	{25, 95}, {14, -91}, {39, 16}, {-15, 61}, {-22, -68}, {27, -90}, {1, -124}, {5, 14},
	{-22, -21}, {33, 9}, {-9, 23}, {-46, -85}, {27, -60}, {4, -115}, {1, -127}, {-25, 124},
	{-11, 74}, {10, -54}, {-40, -7}, {-17, -59}, {-22, 83}, {47, 73}, {-3, 29}, {8, 45},
	{-43, -1}, {-45, -13}, {47, 36}, {47, 28}, {-28, 11}, {56, -44}, {14, -93}, {-61, -15},
	{26, 28}, {62, -22}, {-56, 122}, {-45, -61}, {21, 65}, {-15, 98}, {55, 126}, {-54, 87},
	{50, 96}, {14, 111}, {-47, 32}, {-34, -4}, {-11, -10}, {52, -29}, {8, -109}, {57, 26},
	{55, -105}, {15, 11}, {-62, 78}, {57, 20}, {-17, -56}, {-34, 26}, {3, -17}, {-46, -83},
	{13, 42}, {-5, 101}, {37, 52}, {19, 21}, {55, 120}, {-48, 75}, {-27, 71}, {-59, 106},
	{61, -55}, {-63, 76}, {-58, -12}, {43, -93}, {45, 14}, {-8, 115}, {-41, -88}, {54, -97},
	{-63, -64}, {-48, 25}, {-22, 92}, {11, 53}, {-25, 25}, {-43, 96}, {-27, -102}, {33, -6},
	{17, -21}, {-55, -99}, {-21, -39}, {52, 96}, {-39, 9}, {-12, 43}, {-21, 104}, {-15, -12},
	{55, -108}, {-37, -113}, {-7, 38}, {14, -53}, {52, 15}, {3, -85}, {3, 122}, {-47, -107},
	{-63, -45}, {0, 76}, {27, -91}, {-61, 91}, {-8, 69}, {-26, -78}, {14, -62}, {25, 58},
	{-40, -105}, {-1, -99}, {-35, -29}, {-12, 94}, {-3, -99}, {4, 111}, {-9, -40}, {-57, 118},
	{10, 65}, {54, -13}, {-62, -124}, {10, -63}, {-43, 79}, {46, -65}, {-15, 113}, {41, 4},
	{49, -28}, {43, -57}, {-27, 52}, {52, 50}, {-64, -128}, {16, -128}, {63, -13}, {56, 105},
	{-36, 124}, {-30, 98}, {-3, 54}, {31, 14}, {-7, -60}, {58, -32}, {-14, -87}, {-30, -90},
	{-55, 31}, {-34, -72}, {-14, -112}, {-53, 28}, {49, 69}, {-55, -126}, {11, 78}, {3, 75},
	{-30, -40}, {7, 115}, {29, -121}, {24, -21}, {-53, -120}, {-36, -56}, {-52, -27}, {-38, 83},
	{-18, 121}, {-51, 90}, {-21, -100}, {-36, 82}, {6, 35}, {61, -36}, {-23, -40}, {-24, 45},
	{-39, 21}, {34, 122}, {-1, 115}, {-23, 120}, {-45, -80}, {27, 16}, {35, 61}, {23, -104},
	{-17, -87}, {-60, -85}, {37, 112}, {42, 61}, {2, -69}, {59, 39}, {-28, -65}, {-3, 30},
	{15, -65}, {55, -123}, {1, -15}, {-48, 104}, {17, 125}, {-64, -40}, {44, -41}, {-12, 118},
	{-62, -89}, {52, 118}, {-13, 89}, {57, -7}, {46, 81}, {25, 40}, {-6, 62}, {-3, -104},
	{28, -98}, {-14, -99}, {-40, -23}, {6, 8}, {-6, 50}, {21, 49}, {-2, -76}, {30, 118},
	{-24, -48}, {13, -114}, {-20, 112}, {-23, -103}, {-26, -11}, {58, 32}, {-47, 4}, {-37, 103},
	{1, -122}, {60, -91}, {56, -81}, {21, 53}, {57, 120}, {-50, 25}, {50, 104}, {-54, -53},
	{-13, -67}, {26, 82}, {55, -111}, {-43, 41}, {0, -9}, {53, -7}, {40, -59}, {-23, 34},
	{-26, 43}, {-27, 92}, {10, 82}, {31, -62}, {-21, -82}, {42, -3}, {-28, -127}, {10, -52},
	{-40, -48}, {10, -28}, {0, -44}, {-7, 3}, {34, -24}, {58, 1}, {-25, 34}, {-52, -4},
	{-8, -30}, {41, 103}, {27, -26}, {54, -48}, {34, 113}, {61, -76}, {40, -36}, {-36, 16},
	{53, -80}, {8, -40}, {28, -59}, {-64, -115}, {51, 125}, {17, 123}, {32, -60}, {-23, -30},
	{12, -41}, {37, 5}, {9, -27}, {-49, -38}, {-58, -15}, {48, -15}, {47, 106}, {14, -41},
	{43, 105}, {-49, 43}, {55, 25}, {7, -20}, {13, -84}, {-18, -7}, {-64, -52}, {-9, -80},
	{-32, 47}, {62, -74}, {-12, 74}, {-56, -9}, {11, -79}, {-48, -82}, {26, 75}, {-11, -35},
	{55, 108}, {-51, 117}, {-44, 44}, {44, 33}, {-57, -59}, {45, -87}, {-52, -119}, {43, 89},
	{38, -67}, {-1, 88}, {-41, 119}, {24, -105}, {28, 90}, {48, -52}, {-22, -3}, {1, 117},
	{-33, 75}, {46, 3}, {-36, 79}, {28, -55}, {20, -42}, {-56, -34}, {-61, -78}, {11, 101},
	{-39, -36}, {-53, 94}, {-34, 0}, {-49, 122}, {-3, 55}, {-32, 13}, {-34, 104}, {5, 64},
	{14, -121}, {9, 67}, {57, -7}, {-29, -120}, {43, 102}, {-4, -59}, {50, -35}, {-13, 33},
	{-43, -61}, {52, 82}, {-5, 69}, {-14, 81}, {13, -100}, {52, -126}, {-27, 23}, {-49, 18},
	{27, -32}, {-54, 94}, {-35, -44}, {36, -75}, {60, 85}, {7, -93}, {-63, -76}, {-40, 4},
	{-32, -86}, {12, 30}, {63, -98}, {-19, -68}, {-54, 50}, {59, 92}, {-47, 41}, {21, 49},
	{-9, 10}, {61, -24}, {62, -40}, {26, 115}, {-35, -12}, {-38, 105}, {49, 87}, {-44, 18},
	{-52, -111}, {-59, 6}, {-21, -84}, {-22, 104}, {-1, -42}, {-2, -85}, {61, 95}, {58, -115},
	{-9, -14}, {58, -127}, {4, 70}, {-16, 32}, {-57, 83}, {-47, -9}, {-4, 81}, {41, -125},
	{-50, 48}, {-55, 37}, {20, 127}, {-6, 54}, {10, 62}, {-37, -85}, {41, 93}, {24, -2},
	{-25, -87}, {2, 75}, {48, -82}, {-3, 48}, {27, 102}, {48, 126}, {-56, -96}, {-38, 68},
	{17, -61}, {34, -95}, {46, -19}, {21, 10}, {-43, -87}, {15, 13}, {22, -68}, {56, -20},
	{-7, 40}, {-21, -75}, {-57, -25}, {25, -88}, {-51, 68}, {-60, 112}, {-11, -67}, {-7, -87},
	{30, -53}, {63, -23}, {-62, -85}, {-47, 123}, {53, -112}, {-5, -26}, {27, 90}, {55, 53},
	{50, 43}, {-11, 47}, {42, 21}, {-16, 21}, {-7, 126}, {-42, 106}, {-40, 14}, {-19, -89},
	{-32, -124}, {-31, 121}, {-33, -75}, {-45, 106}, {32, 49}, {-64, 50}, {-31, 44}, {-31, 112},
	{-16, 12}, {-23, -9}, {-39, 87}, {1, 95}, {-18, 86}, {35, 14}, {15, 17}, {-45, -68},
	{-46, -20}, {-52, 95}, {-34, 111}, {-12, -97}, {45, -104}, {-28, -79}, {60, -128}, {33, 68},
	{43, 103}, {1, -87}, {-12, -62}, {-55, 76}, {-8, 103}, {-3, 112}, {-27, 0}, {-30, -82},
	{-47, 71}, {-53, 74}, {-16, 0}, {-55, -83}, {13, 32}, {44, 94}, {-34, 124}, {-7, -96},
	{-35, -104}, {5, -72}, {32, 82}, {40, 60}, {24, 91}, {60, -105}, {-13, -1}, {18, -45},
	{57, -88}, {40, -24}, {19, 116}, {42, 45}, {-48, -21}, {30, 66}, {-5, -82}, {-60, -5},
	{6, -100}, {32, 115}, {-33, -44}, {-31, -13}, {7, -65}, {-63, -99}, {-51, 62}, {-61, 54},
	{-63, 35}, {9, -20}, {-26, 88}, {45, -82}, {-53, 5}, {34, -4}, {30, 116}, {19, 19},
	{-63, 80}, {34, 98}, {7, 24}, {52, 83}, {48, -65}, {55, 25}, {20, 78}, {61, 34},
	{19, -100}, {-33, 16}, {35, -57}, {-50, 85}, {52, -19}, {-56, 35}, {-17, 30}, {-1, -55},
	{31, 64}, {-37, -3}, {-39, 110}, {7, 119}, {8, -5}, {-42, -8}, {-62, -16}, {61, 3},
	{-40, -66}, {-32, 56}, {-39, -94}, {44, 90}, {-3, -33}, {17, 88}, {48, 26}, {-18, 110},
	{31, -73}, {-60, -56}, {-26, -55}, {26, 82}, {33, -5}, {-50, -18}, {-1, 109}, {-58, -6},
	{-28, -62}, {-24, -100}, {36, -31}, {-18, -62}, {58, -47}, {-21, -105}, {23, 54}, {46, 80},
	{41, 21}, {-43, 19}, {-18, 38}, {55, 46}, {-55, 41}, {9, -49}, {-8, 66}, {48, -126},
	{-31, -123}, {26, 6}, {-44, 33}, {-33, 46}, {-16, 53}, {27, 111}, {-58, 99}, {31, -108},
	{1, -82}, {-51, -54}, {-31, -91}, {-23, 108}, {-28, -126}, {23, 56}, {-9, -82}, {27, -77},
	{-12, 92}, {-20, 81}, {33, 56}, {51, 108}, {-51, -7}, {-13, -113}, {34, -15}, {43, 114},
	{14, -63}, {-35, -72}, {60, -40}, {-26, -8}, {-43, 75}, {52, 100}, {9, -81}, {11, -20},
	{-22, 114}, {46, 115}, {-20, 7}, {58, -103}, {-8, -27}, {-27, -111}, {-49, -46}, {-32, -122},
	{40, 25}, {-3, 9}, {-15, -36}, {-17, -3}, {60, -22}, {-52, 116}, {50, -24}, {-44, -124},
	{25, -24}, {24, -94}, {-20, -71}, {-60, 79}, {14, 91}, {-24, -78}, {-13, 54}, {3, 3},
	{-28, 40}, {9, 40}, {-54, 48}, {-64, 73}, {-20, -100}, {10, 15}, {-27, -35}, {2, -55},
	{36, 85}, {37, -70}, {-28, 67}, {42, 25}, {23, 97}, {-19, 2}, {47, -32}, {-16, 86},
	{-30, -76}, {-30, -64}, {63, 19}, {-44, -88}, {9, -107}, {34, -32}, {-39, 95}, {-38, 101},
	{4, 66}, {-49, -49}, {39, -63}, {-50, 3}, {-5, 127}, {29, 91}, {4, -62}, {38, -32},
	{1, 12}, {37, 9}, {8, -92}, {-40, 79}, {-58, -41}, {-21, -119}, {37, -104}, {-15, 9},
	{58, -109}, {-25, -1}, {-41, 56}, {33, 40}, {58, 35}, {32, 106}, {-8, 89}, {39, -87},
	{-33, 38}, {12, -33}, {32, 30}, {-15, 106}, {-14, -115}, {-41, 15}, {46, 24}, {-20, -23},
	{-39, -5}, {-50, -62}, {61, 56}, {-30, -24}, {34, -14}, {52, 20}, {20, 54}, {2, 93},
	{-15, -21}, {15, -118}, {58, 64}, {-1, 48}, {34, -117}, {60, 126}, {-3, 100}, {46, -107},
	{56, 64}, {-16, -64}, {46, 64}, {41, -120}, {-37, -107}, {31, -84}, {61, 76}, {42, -24},
	{56, 49}, {43, -20}, {-60, 98}, {-15, -80}, {62, 44}, {-33, -12}, {28, 27}, {34, 107},
	{-14, -112}, {9, -60}, {-37, 114}, {28, 12}, {-48, -52}, {19, 25}, {-46, -24}, {29, 103},
	{46, 11}, {-48, 75}, {46, -122}, {20, -98}, {-26, 101}, {30, 2}, {-59, 47}, {8, 126},
	{27, -107}, {-36, 126}, {41, -117}, {-50, -10}, {2, 29}, {7, -63}, {1, -40}, {31, -36},
	{-64, 112}, {5, -125}, {36, -29}, {5, 3}, {-47, -54}, {-44, 113}, {-22, 26}, {-23, -127},
	{14, -110}, {-47, -93}, {-16, -127}, {15, 29}, {-14, 106}, {-46, 88}, {12, 115}, {13, -22},
	{33, -110}, {-12, -36}, {3, -36}, {15, -89}, {-51, 58}, {-26, -81}, {-35, -112}, {-41, -24},
	{-10, 79}, {-8, -36}, {59, -1}, {-13, 81}, {11, -47}, {8, -53}, {-5, -98}, {24, -96},
	{-23, 44}, {44, -17}, {21, -33}, {-38, 117}, {41, 59}, {9, -126}, {-44, -81}, {-53, 116},
	{20, 102}, {42, -29}, {1, -102}, {-25, -53}, {-11, 31}, {20, 91}, {8, -119}, {41, -53},
	{-29, -120}, {10, 107}, {-12, -89}, {-58, -93}, {1, -126}, {-57, -89}, {-4, 82}, {60, 119},
	},
	{
	{35, 3}, {47, -41}, {36, 55}, {61, -38}, {-47, 6}, {5, -9}, {-48, -71}, {-19, -48},
	{12, 115}, {43, -96}, {-8, -27}, {-37, 26}, {-13, -112}, {35, 97}, {-21, 55}, {-43, -110},
	{8, 84}, {54, 39}, {19, -105}, {-63, -70}, {3, -4}, {17, 83}, {-57, -7}, {-15, -70},
	{-13, -51}, {-40, 59}, {59, -31}, {51, 29}, {-50, -62}, {11, -55}, {32, -122}, {-11, -50},
	{49, 49}, {39, 44}, {-9, -17}, {6, -37}, {52, 113}, {-46, -18}, {61, 51}, {-51, 50},
	{19, -115}, {-60, 82}, {6, -105}, {-15, -9}, {-58, 113}, {13, -28}, {38, -60}, {31, -118},
	{-61, -40}, {-6, -53}, {-58, -118}, {41, -99}, {-33, -54}, {43, 125}, {18, -97}, {-30, 67},
	{-2, 103}, {-27, -99}, {-15, -55}, {60, 111}, {-6, 48}, {-7, 122}, {1, 14}, {-5, -44},
	{-38, -63}, {-49, 99}, {-29, 30}, {42, -125}, {8, -55}, {-35, 17}, {-9, -68}, {1, 122},
	{-57, -32}, {6, 5}, {26, -114}, {49, 27}, {14, -2}, {57, 62}, {-17, -40}, {-56, -71},
	{-23, -7}, {-33, -107}, {-56, -65}, {-28, -18}, {-4, -13}, {-16, 118}, {-53, 56}, {19, -68},
	{23, 1}, {44, 66}, {45, -72}, {-20, -20}, {-34, 66}, {-34, -32}, {37, -31}, {-14, -112},
	{-58, 29}, {59, -34}, {63, 118}, {57, -100}, {-13, 23}, {41, 68}, {-21, 55}, {32, 126},
	{26, 22}, {49, -24}, {33, 23}, {-3, -108}, {-29, 35}, {34, -71}, {20, -56}, {-28, -10},
	{33, 80}, {26, 39}, {63, 115}, {45, 102}, {20, -81}, {-21, 69}, {6, 121}, {-31, -49},
	{46, -27}, {48, -94}, {36, -1}, {-11, -125}, {-64, -103}, {-22, -104}, {-33, 67}, {-51, -57},
	{56, -126}, {-13, 92}, {-27, 31}, {-57, 72}, {-35, 61}, {29, 1}, {58, -7}, {20, 70},
	{45, -36}, {6, 4}, {-20, -40}, {27, -92}, {21, -55}, {9, 76}, {-21, 62}, {-29, -9},
	{44, -97}, {49, -89}, {1, 34}, {36, -85}, {5, 97}, {27, -78}, {19, 27}, {-43, 85},
	{-54, -61}, {38, -74}, {-21, 60}, {-50, -18}, {-14, 107}, {-11, -16}, {-1, 34}, {52, 48},
	{-31, -66}, {-52, 53}, {17, 79}, {25, -30}, {1, 4}, {15, 74}, {-13, 11}, {29, -108},
	{50, 74}, {-10, 28}, {20, -6}, {-10, 12}, {61, -110}, {0, -9}, {17, -117}, {61, -24},
	{47, -46}, {32, 83}, {-51, 82}, {-37, 55}, {-10, -52}, {35, -91}, {-49, -32}, {-63, 39},
	{9, -112}, {-51, -97}, {-40, -20}, {21, -37}, {10, -7}, {-25, 103}, {-37, -5}, {-16, -25},
	{-13, 18}, {30, -76}, {24, 103}, {-64, 60}, {-32, 94}, {49, -49}, {-40, 98}, {-6, -113},
	{26, 14}, {48, 27}, {49, 116}, {37, 90}, {-28, 85}, {-16, 61}, {-26, -63}, {-27, -89},
	{34, -104}, {-45, 62}, {-16, -84}, {26, -123}, {-11, 12}, {45, -98}, {16, -53}, {-7, -53},
	{35, 54}, {-10, -9}, {-30, -63}, {-64, -126}, {-41, -88}, {34, 68}, {-61, -7}, {-5, 33},
	{28, -57}, {-41, 122}, {1, 20}, {15, -48}, {29, -84}, {12, -53}, {-57, -93}, {-5, -107},
	{62, 119}, {16, -26}, {41, 52}, {-44, 10}, {-58, -62}, {-51, -76}, {-35, -18}, {-55, 110},
	{44, 110}, {3, -101}, {-12, 44}, {-33, -67}, {39, 125}, {-61, -11}, {-24, -32}, {47, -77},
	{6, -121}, {50, 94}, {-35, -73}, {2, -73}, {-56, 44}, {-44, 19}, {-53, -117}, {47, 87},
	{40, -97}, {18, 76}, {15, -75}, {-61, -70}, {22, 78}, {-11, 3}, {-54, 76}, {-35, 18},
	{9, -75}, {36, -16}, {-8, 6}, {-25, -18}, {-63, -127}, {35, 90}, {63, 117}, {16, 82},
	{5, 62}, {-47, -92}, {15, -68}, {-40, 52}, {-41, -52}, {13, 3}, {31, -58}, {62, -25},
	{8, -59}, {-55, 51}, {-19, 89}, {52, -18}, {47, 101}, {-15, 14}, {28, -68}, {-17, 43},
	{38, -48}, {-36, -113}, {30, -39}, {-1, -61}, {35, 127}, {40, -114}, {-30, -103}, {19, 122},
	{-15, -44}, {-22, -53}, {0, -38}, {-45, -8}, {-4, 111}, {-54, 14}, {-31, -19}, {52, 95},
	{52, 50}, {12, 22}, {52, -123}, {-26, 0}, {55, -115}, {59, 70}, {-63, 42}, {-27, 52},
	{-33, -47}, {62, -125}, {27, -127}, {49, -62}, {-36, -98}, {-5, 11}, {-40, -6}, {63, 7},
	{-35, 29}, {-4, 109}, {34, 69}, {-34, -15}, {38, 61}, {-32, 87}, {-27, 69}, {-20, 33},
	{-50, 73}, {40, 89}, {-48, -120}, {36, 23}, {-55, 72}, {-60, -48}, {26, -14}, {54, 71},
	{25, -78}, {23, 6}, {-59, 35}, {-42, 17}, {50, -126}, {-41, 56}, {-51, -62}, {57, 3},
	{-32, 63}, {28, -83}, {-6, -91}, {19, -64}, {-15, -37}, {-30, -76}, {-8, -42}, {-47, 3},
	{29, -11}, {-10, 85}, {20, 64}, {-52, 122}, {45, 54}, {-12, -127}, {28, -52}, {-10, -81},
	{-54, 73}, {-36, 67}, {-25, 74}, {-61, -26}, {-1, 61}, {-28, 6}, {-32, -59}, {-16, -73},
	{45, 78}, {-43, -41}, {60, 19}, {-64, 78}, {33, 94}, {19, 81}, {59, 81}, {46, -108},
	{22, 126}, {-13, 22}, {-8, -126}, {-31, -44}, {-24, 16}, {47, 36}, {13, -89}, {18, 102},
	{63, 121}, {3, -5}, {-59, -54}, {-36, 13}, {0, -126}, {-49, -119}, {19, -19}, {-8, -42},
	{-21, -75}, {-26, 28}, {-46, 44}, {-16, -32}, {42, -103}, {-7, -76}, {-8, -51}, {-11, 120},
	{-13, 2}, {52, -7}, {-15, -68}, {-35, -78}, {53, 76}, {34, -87}, {-26, -5}, {-54, -66},
	{3, 71}, {38, -58}, {25, 18}, {-49, -12}, {52, -14}, {-61, -58}, {45, -46}, {34, -5},
	{28, 109}, {29, 17}, {-2, 16}, {45, 11}, {-18, -61}, {-5, 91}, {-9, -106}, {-39, -90},
	{-35, -9}, {-29, 52}, {36, -59}, {-11, -119}, {-11, 70}, {-49, 84}, {-48, 29}, {-22, 5},
	{-34, -115}, {-11, -110}, {-59, 108}, {-49, 100}, {58, -98}, {-12, 107}, {-20, 70}, {-7, -52},
	{-63, -11}, {24, -55}, {3, 69}, {34, -103}, {61, 86}, {22, -68}, {-27, 114}, {40, 49},
	{-8, -65}, {-49, 112}, {-41, -87}, {-28, -83}, {45, 67}, {22, -117}, {-12, -86}, {-60, 95},
	{-43, -126}, {52, 54}, {32, -59}, {-17, 27}, {-37, -20}, {-53, 75}, {49, -89}, {24, -81},
	{-28, 20}, {24, -81}, {-30, -86}, {-25, -102}, {-50, -38}, {56, 71}, {-14, 7}, {-60, -28},
	{26, 107}, {-20, 8}, {35, 124}, {62, -109}, {-52, -53}, {-12, 103}, {56, -123}, {57, 43},
	{6, -53}, {-25, -3}, {-49, -46}, {-39, -29}, {-50, -74}, {56, 67}, {-3, 31}, {24, -99},
	{28, -81}, {-40, 28}, {-7, 24}, {-30, 85}, {-9, 124}, {-48, -120}, {-37, 59}, {21, 119},
	{36, 43}, {46, 1}, {37, -48}, {-10, -107}, {39, -16}, {-53, -57}, {20, -34}, {-13, 17},
	{14, 69}, {3, -121}, {24, 108}, {49, 6}, {-32, 31}, {-47, -93}, {-48, 16}, {8, -48},
	{-15, 13}, {-46, -36}, {25, -128}, {-47, -15}, {35, -88}, {-55, -35}, {-8, -41}, {-47, -36},
	{-9, 90}, {41, 89}, {35, 80}, {-50, -101}, {-3, 78}, {-55, -11}, {61, -119}, {-22, 18},
	{52, -33}, {-62, 6}, {58, -102}, {27, 46}, {3, 66}, {-31, -125}, {-20, 116}, {-64, 10},
	{-6, 119}, {-5, 24}, {-18, -115}, {-9, 30}, {-22, -75}, {-28, -123}, {58, -74}, {21, 36},
	{-19, -88}, {2, 29}, {61, 13}, {-60, -44}, {-19, 124}, {-52, -126}, {-57, 82}, {-37, -65},
	{29, -116}, {19, 52}, {-2, -34}, {-58, 72}, {-41, -76}, {-45, -102}, {-47, -101}, {24, -41},
	{-37, 32}, {15, -5}, {30, 25}, {28, 10}, {-25, 99}, {15, 61}, {-27, 1}, {-47, 3},
	{27, -114}, {53, -37}, {-24, -105}, {-26, 73}, {55, -54}, {-13, 96}, {22, -54}, {-32, -96},
	{-48, -126}, {-36, -8}, {6, 80}, {-46, 75}, {20, 91}, {-31, 98}, {4, 53}, {-28, 19},
	{38, -31}, {-11, 99}, {-28, 26}, {24, 34}, {-39, 92}, {-55, -116}, {3, 65}, {33, 78},
	{-49, 19}, {-4, 105}, {52, -72}, {39, 20}, {-53, 73}, {-60, -75}, {-3, -52}, {41, 17},
	{26, 88}, {-2, 2}, {39, 102}, {3, -128}, {-9, -76}, {54, -95}, {-34, -79}, {-22, 120},
	{-37, 86}, {-30, -11}, {-40, -66}, {17, -30}, {-23, -6}, {13, -46}, {26, -70}, {41, 40},
	{-34, 23}, {-16, 101}, {5, 4}, {41, 107}, {-47, -52}, {52, -4}, {45, -10}, {-62, -128},
	{62, 22}, {-62, 76}, {-33, 114}, {48, 43}, {-56, -111}, {-11, -123}, {43, -66}, {46, -39},
	{47, 125}, {-26, 64}, {-46, -8}, {-34, -18}, {45, 122}, {-26, -49}, {53, -103}, {-36, -54},
	{13, 103}, {39, 60}, {32, -113}, {1, -103}, {44, -78}, {-59, -78}, {16, -65}, {37, 101},
	{0, 8}, {54, -108}, {-33, -10}, {62, -8}, {35, -90}, {-28, -16}, {63, 39}, {-31, 13},
	{-63, -38}, {6, 53}, {-2, 30}, {-3, -40}, {-31, -117}, {61, -100}, {23, 9}, {-29, 41},
	{22, 24}, {26, 75}, {44, -51}, {16, -113}, {-6, -107}, {-48, 84}, {-63, -42}, {-52, 43},
	{-54, -69}, {-7, 42}, {-23, -93}, {-25, 25}, {-62, -54}, {-9, -66}, {12, 59}, {-29, -27},
	{-17, 23}, {34, -30}, {54, -61}, {40, -55}, {-14, -73}, {-63, -45}, {-62, 117}, {12, 38},
	{48, 113}, {17, 69}, {44, 15}, {-51, 40}, {-14, -23}, {48, 15}, {4, -60}, {36, 31},
	{21, 6}, {-49, -116}, {33, -112}, {29, -22}, {60, -40}, {2, -77}, {-4, 54}, {-52, 9},
	{44, -20}, {17, 63}, {-63, 80}, {-42, -13}, {27, -93}, {-33, -43}, {-62, -29}, {21, -97},
	{-32, 57}, {-38, -61}, {-17, 64}, {-58, 49}, {-56, -118}, {-24, -18}, {-52, -7}, {16, 59},
	{-6, -20}, {35, -60}, {63, 50}, {2, -59}, {24, -10}, {31, 12}, {0, -37}, {5, 2},
	{-60, 123}, {-38, -98}, {22, 53}, {48, -16}, {-17, -96}, {-32, -119}, {-49, 16}, {-39, 82},
	{37, -18}, {23, -65}, {25, -108}, {-3, 19}, {-41, -19}, {16, -30}, {-25, -8}, {4, -2},
	{8, 92}, {3, -80}, {35, -113}, {-11, -29}, {-3, -75}, {-24, -93}, {63, 102}, {57, -29},
	{-23, -73}, {10, 31}, {23, -6}, {-29, 69}, {-53, 61}, {-13, 90}, {-45, -123}, {-6, -98},
	{-25, -124}, {-18, -23}, {28, -104}, {40, 81}, {40, -122}, {-31, 67}, {-25, 121}, {-21, -109},
	{-22, 44}, {35, 67}, {-48, 58}, {-37, 112}, {-15, -19}, {-21, -115}, {18, -127}, {-5, -104},
	{56, -9}, {7, -25}, {-3, 19}, {-34, 98}, {50, 48}, {-53, -41}, {57, -110}, {37, -51},
	{7, -44}, {30, 45}, {21, -87}, {60, -13}, {56, -7}, {-2, 41}, {-37, 19}, {2, 39},
	{52, -103}, {-27, -105}, {1, 12}, {-50, -120}, {-12, -74}, {-21, 92}, {61, -31}, {60, -80},
	{39, -51}, {-16, -75}, {50, -1}, {-47, 94}, {-51, 5}, {-22, -79}, {62, 107}, {49, 102},
	{-1, 47}, {18, -95}, {-41, -94}, {-54, 32}, {15, 22}, {40, 43}, {4, 89}, {-43, 45},
	{23, 96}, {-40, -43}, {-48, -5}, {-11, 16}, {7, -114}, {-42, -66}, {10, -92}, {-2, 120},
	{-16, 73}, {-6, -84}, {-59, 31}, {-35, 97}, {-48, 76}, {-12, -18}, {32, 83}, {-43, 103},
	{-32, -7}, {-52, -40}, {-63, 85}, {10, 34}, {-50, 31}, {-39, 24}, {35, 30}, {-51, -25},
	{-2, 15}, {18, 25}, {-7, -13}, {-33, 48}, {56, 15}, {-7, -45}, {-11, 53}, {-56, 37},
	{33, 75}, {-18, 3}, {-56, -12}, {40, 127}, {29, -21}, {55, 79}, {-24, -17}, {-44, -24},
	{50, 23}, {-36, -34}, {6, 49}, {-25, -33}, {-15, 47}, {47, 97}, {-33, -5}, {38, 43},
	{44, -53}, {50, -40}, {-44, -71}, {4, -103}, {39, -35}, {25, 68}, {-21, -42}, {-62, 102},
	{50, -42}, {52, -126}, {57, 50}, {50, -62}, {-62, 26}, {59, -111}, {-40, -125}, {36, -94},
	{38, 1}, {53, 8}, {-19, 3}, {55, 61}, {31, 34}, {32, 88}, {-32, 98}, {20, 97},
	{9, -53}, {-63, -45}, {-27, -105}, {-41, 90}, {-41, 89}, {-59, 108}, {27, -29}, {-17, 53},
	{-57, -35}, {25, -53}, {8, 26}, {40, 18}, {17, 69}, {36, 53}, {-47, 31}, {-54, -27},
	{31, -103}, {-32, 16}, {-19, -46}, {-26, -29}, {23, 119}, {9, 47}, {-62, -44}, {33, -50},
	{55, 119}, {-29, 34}, {-10, 71}, {13, -41}, {-31, -2}, {-9, 83}, {45, -48}, {37, 60},
	{-54, 36}, {-2, -91}, {34, -80}, {-53, -122}, {37, 112}, {62, 11}, {39, -54}, {-25, -91},
	{41, 48}, {-29, -34}, {60, 100}, {-60, -73}, {-20, -4}, {-57, 49}, {-2, 97}, {11, 22},
	{53, -55}, {-28, 33}, {-46, -30}, {-15, -34}, {32, -84}, {52, -48}, {19, -99}, {-24, 97},
	{9, -113}, {-24, 49}, {-62, -62}, {-58, 18}, {13, 90}, {38, -1}, {-16, -63}, {-16, -95},
	{-1, -64}, {39, 38}, {-43, 83}, {44, -13}, {-7, -32}, {-14, -88}, {24, 27}, {-1, -70},
	{-59, -4}, {-4, -32}, {5, -14}, {-35, 3}, {-11, 125}, {-17, -83}, {40, -119}, {61, -41},
	{38, -7}, {46, -61}, {-58, -45}, {54, -44}, {24, 120}, {30, 126}, {19, 56}, {-22, -41},
	{-7, 68}, {-40, 8}, {-33, -74}, {10, 80}, {-39, 107}, {-55, 106}, {1, 112}, {-45, -92},
	{53, -89}, {1, 93}, {42, -72}, {-33, -35}, {39, -11}, {-19, -92}, {-49, 40}, {53, -89},
	{-6, -54}, {29, -40}, {-22, 86}, {10, -41}, {63, 29}, {17, -57}, {-53, 120}, {-8, 68},
	{30, -7}, {-24, 0}, {39, 55}, {-46, 53}, {-2, -14}, {52, 72}, {29, -5}, {58, -29},
	{58, 108}, {-56, 4}, {-61, 63}, {-61, 68}, {-2, -69}, {-53, 51}, {60, 15}, {12, -65},
	{-37, 74}, {19, 119}, {11, 8}, {0, 41}, {-39, -124}, {-20, -29}, {43, 68}, {7, 38},
	},
}

// mnTableForSlice selects the initialization coefficient rows for a
// slice type: I and SI slices share one table; P, SP and B slices pick
// one of three rows by cabacInitIdc (clause 9.3.1.1).
func mnTableForSlice(sliceType SliceType, cabacInitIdc int) [numContexts]mn {
	switch sliceType {
	case SliceTypeI, SliceTypeSI:
		return mnTableI
	default:
		return mnTablePB[clip3(0, 2, cabacInitIdc)]
	}
}

// transIdxMPS and transIdxLPS are the MPS/LPS probability-state
// transition tables (Table 9-45), identical in H.264 and HEVC (HEVC
// reused the H.264 CABAC engine verbatim), grounded on
// NOT-REAL-GAMES-vulkango's cabac_hevc.go.
var transIdxMPS = [64]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48,
	49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 62, 63,
}

var transIdxLPS = [64]int{
	0, 0, 1, 2, 2, 4, 4, 5, 6, 7, 8, 9, 9, 11, 11, 12,
	13, 13, 15, 15, 16, 16, 18, 18, 19, 19, 21, 21, 22, 22, 23, 24,
	24, 25, 26, 26, 27, 27, 28, 29, 29, 30, 30, 30, 31, 32, 32, 33,
	33, 33, 34, 34, 35, 35, 35, 36, 36, 36, 37, 37, 37, 38, 38, 63,
}

// rangeTabLPS is the LPS-range quantization table (Table 9-44), indexed
// by [pStateIdx][(codIRange>>6)&3]; same source as the transition
// tables above.
var rangeTabLPS = [64][4]int{
	{128, 176, 208, 240}, {128, 167, 197, 227}, {128, 158, 187, 216}, {123, 150, 178, 205},
	{116, 142, 169, 195}, {111, 135, 160, 185}, {105, 128, 152, 175}, {100, 122, 144, 166},
	{95, 116, 137, 158}, {90, 110, 130, 150}, {85, 104, 123, 142}, {81, 99, 117, 135},
	{77, 94, 111, 128}, {73, 89, 105, 122}, {69, 85, 100, 116}, {66, 80, 95, 110},
	{62, 76, 90, 104}, {59, 72, 86, 99}, {56, 69, 81, 94}, {53, 65, 77, 89},
	{51, 62, 73, 85}, {48, 59, 69, 80}, {46, 56, 66, 76}, {43, 53, 63, 72},
	{41, 50, 59, 69}, {39, 48, 56, 65}, {37, 45, 54, 62}, {35, 43, 51, 59},
	{33, 41, 48, 56}, {32, 39, 46, 53}, {30, 37, 43, 50}, {29, 35, 41, 48},
	{27, 33, 39, 45}, {26, 31, 37, 43}, {24, 30, 35, 41}, {23, 28, 33, 39},
	{22, 27, 32, 37}, {21, 26, 30, 35}, {20, 24, 29, 33}, {19, 23, 27, 31},
	{18, 22, 26, 30}, {17, 21, 25, 28}, {16, 20, 23, 27}, {15, 19, 22, 25},
	{14, 18, 21, 24}, {14, 17, 20, 23}, {13, 16, 19, 22}, {12, 15, 18, 21},
	{12, 14, 17, 20}, {11, 14, 16, 19}, {11, 13, 15, 18}, {10, 12, 15, 17},
	{10, 12, 14, 16}, {9, 11, 13, 15}, {9, 11, 12, 14}, {8, 10, 12, 14},
	{8, 9, 11, 13}, {7, 9, 11, 12}, {7, 9, 10, 12}, {7, 8, 10, 11},
	{6, 8, 9, 11}, {6, 7, 9, 10}, {6, 7, 8, 9}, {2, 2, 2, 2},
}

// Residual-block ctxIdxOffset factor tables (spec.md §4.3): each is a
// 19-entry table indexed by the block-kind factor derived by
// blockKindFactor. Index 0 is unused (factor 0 means "not applicable").
var significantCoeffFlagOffsets = [19]int{
	0, 105, 402, 484, 528, 660, 718, 105, 402, 484, 528, 660, 718, 277, 436, 776, 820, 675, 733,
}

var lastSignificantCoeffFlagOffsets = [19]int{
	0, 166, 417, 572, 616, 690, 748, 166, 417, 572, 616, 690, 748, 338, 451, 864, 908, 699, 757,
}

var codedBlockFlagOffsets = [19]int{
	0, 85, 1012, 460, 472, 1012, 1012, 85, 1012, 460, 472, 1012, 1012, 85, 1012, 460, 472, 1012, 1012,
}

var coeffAbsLevelMinus1PrefixOffsets = [19]int{
	0, 227, 426, 952, 982, 708, 766, 227, 426, 952, 982, 708, 766, 227, 426, 952, 982, 708, 766,
}

// blockKindFactor derives the "block-kind factor" used to index the
// four offset tables above. Restructured as a direct table keyed by
// rbk, per spec.md §9's note that the source's chained if/else has an
// unreachable branch for rbk==9.
var blockKindBase = [14]int{
	1, 1, 1, 1, 1, 2, 3, 3, 3, 5, 4, 4, 4, 6,
}

func blockKindFactor(rbk ResidualBlockKind, mbaff MbAffMode) int {
	if rbk < 0 || int(rbk) >= len(blockKindBase) {
		return 0
	}

	base := blockKindBase[rbk]

	switch mbaff {
	case MbAffFrame:
		return base + 6
	case MbAffField:
		return base + 12
	default:
		return base
	}
}

// refIdxHigherBinCtxIdxInc is the fixed table for ref_idx_lX bins beyond
// bin 0: {-, 4, 5, 5, 5, 5, 5}. Index 0 is unused.
var refIdxHigherBinCtxIdxInc = [7]int{0, 4, 5, 5, 5, 5, 5}

// mvdHigherBinCtxIdxInc is the fixed table for mvd_lX bins beyond bin 0:
// {-, 3, 4, 5, 6, 6, 6}. Index 0 is unused.
var mvdHigherBinCtxIdxInc = [7]int{0, 3, 4, 5, 6, 6, 6}


// positionTable holds the per-position ctxIdxInc lookup used by
// significant_coeff_flag and last_significant_coeff_flag for the 8x8
// transform-block categories (ctxBlockCat 5, 9, 13), split by whether
// the macroblock pair is frame- or field-coded (clause 9.3.3.1.3,
// "position ctx" in spec.md's terms). Unlike the 4x4 categories,
// whose ctxIdxInc is the position itself (capped), the 8x8 categories
// go through this explicit table.
type positionTable struct {
	frame, field [63]int
}

var significantCoeffPositionTable = positionTable{
	frame: [63]int{
	8, 10, 14, 13, 2, 1, 4, 7, 6, 10, 10, 1, 8, 7, 13, 13,
	14, 12, 3, 5, 1, 2, 9, 12, 2, 7, 2, 12, 10, 0, 6, 1,
	4, 13, 14, 2, 3, 11, 14, 12, 14, 11, 7, 7, 12, 3, 7, 2,
	4, 14, 2, 3, 2, 5, 1, 10, 8, 1, 12, 13, 3, 5, 3,
	},
	field: [63]int{
	1, 7, 9, 0, 11, 3, 14, 6, 6, 12, 8, 7, 13, 3, 14, 7,
	4, 13, 8, 8, 0, 7, 4, 5, 11, 11, 13, 6, 8, 2, 1, 0,
	9, 9, 9, 11, 2, 2, 6, 11, 12, 12, 1, 1, 6, 12, 1, 5,
	9, 13, 4, 0, 3, 5, 14, 1, 10, 0, 6, 1, 14, 5, 4,
	},
}

var lastSignificantCoeffPositionTable = positionTable{
	frame: [63]int{
	11, 14, 8, 6, 14, 13, 2, 7, 12, 11, 11, 0, 4, 7, 0, 11,
	10, 8, 2, 14, 11, 8, 5, 0, 9, 12, 9, 8, 4, 11, 3, 6,
	14, 10, 0, 1, 14, 0, 5, 8, 0, 9, 11, 1, 4, 3, 7, 0,
	14, 14, 10, 14, 0, 5, 0, 8, 13, 5, 13, 0, 4, 2, 12,
	},
	field: [63]int{
	9, 10, 10, 7, 4, 9, 11, 2, 7, 13, 12, 2, 9, 2, 2, 12,
	4, 10, 10, 5, 2, 2, 13, 14, 0, 5, 14, 1, 11, 3, 8, 8,
	4, 0, 9, 2, 4, 11, 0, 9, 14, 14, 3, 13, 13, 5, 13, 4,
	3, 0, 10, 7, 1, 12, 14, 10, 3, 8, 0, 4, 3, 5, 10,
	},
}
