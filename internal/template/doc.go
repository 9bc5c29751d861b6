// Package template reads INI settings templates and finds their placeholders.
//
// A template is an INI file whose values may be placeholders:
//
//	[DJANGO]
//	KEY = {DJANGO_SECRET_KEY}
//
//	[DATABASE_CREDENTIALS]
//	USER = {USER_VALUE}
//	PASSWORD = {ENCRYPTED_USER_VALUE}
//
// A placeholder is a value of the form "{DIRECTIVE}" with optional whitespace
// around it. The directive is case-insensitive and is normalized to upper case.
// Values that are not placeholders are copied to the output unchanged.
//
// Values are read raw: inline comment markers, surrounding quotes, trailing
// backslashes and '%' sequences are not interpreted, so a literal '#' in a
// secret survives the round trip. Indented lines continue the previous value.
//
// The writer quotes three kinds of value so it can read them back:
//
//	PAD   = " pad "        leading or trailing whitespace
//	MULTI = """a
//	    b"""               a line break
//	TICK  = """a`b"""      a backtick
//
// A reader that does not understand this quoting, such as Python's
// configparser, sees the quotes as part of the value. Values taken from a
// template line starting with a backtick or """ are unquoted on read.
package template
