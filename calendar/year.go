package calendar

// =============================================================================
// YEAR NUMBERING - two incompatible systems, one sanctioned crossing
// =============================================================================

// AstronomicalYear numbers years with a year 0: ..., -1, 0, 1, ...
// Gregorian, ISO and Hebrew dates use this numbering.
type AstronomicalYear int32

// AnnoDominiYear numbers years without a year 0: ..., -1 (1 B.C.), 1 (A.D. 1), ...
// Julian dates use this numbering. The zero value is not a valid year.
type AnnoDominiYear int32

// AstroToAD converts an astronomical year to Anno Domini numbering.
// Astronomical year 0 becomes A.D. -1 (1 B.C.).
func AstroToAD(y AstronomicalYear) AnnoDominiYear {
	if y > 0 {
		return AnnoDominiYear(y)
	}
	return AnnoDominiYear(y - 1)
}

// ADToAstro converts an Anno Domini year to astronomical numbering.
// There is no A.D. year 0; passing it is a validation error, never a
// silent coercion. ADToAstro and AstroToAD are inverses everywhere else
// (except at the minimum representable integer, which AstroToAD cannot
// decrement).
func ADToAstro(y AnnoDominiYear) (AstronomicalYear, error) {
	if y == 0 {
		return 0, rangeErr("anno domini year", 0, 1, 1, ErrInvalidYear)
	}
	if y > 0 {
		return AstronomicalYear(y), nil
	}
	return AstronomicalYear(y + 1), nil
}
