package dto

import "strconv"

// Discord snowflakes leave the API as strings so javascript clients do not
// mangle them past 2^53.
func formatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}

// FormatSnowflake is the exported form for handlers.
func FormatSnowflake(id int64) string {
	return formatSnowflake(id)
}

// ParseSnowflake parses a snowflake string back to its numeric form.
func ParseSnowflake(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
