package folder

import "strconv"

// BackgroundColor returns BgColor as an integer, or defaultColor when empty
func (f *Folder) BackgroundColor(defaultColor int32) (int32, error) {
	return NonEmptyColor(f.BgColor, defaultColor)
}

// ForegroundColor returns FgColor as an integer, or defaultColor when empty
func (f *Folder) ForegroundColor(defaultColor int32) (int32, error) {
	return NonEmptyColor(f.FgColor, defaultColor)
}

// NonEmptyColor parses a decimal colour, returning defaultColor for an empty candidate
func NonEmptyColor(candidate string, defaultColor int32) (int32, error) {
	if candidate == "" {
		return defaultColor, nil
	}
	value, err := strconv.ParseInt(candidate, 10, 32)
	if err != nil {
		return 0, &FormatError{Value: candidate, Err: err}
	}
	return int32(value), nil
}
