// Package envfile reads local secrets files in dotenv format and merges them
// into an environment mapping.
//
// The accepted format is one KEY=value pair per line. Blank lines and lines
// starting with # are ignored, and an optional "export " prefix is allowed.
// Values follow joho/godotenv rules (single or double quotes, escapes in
// double quotes, trailing # comments on unquoted values), except that $VAR
// references are kept as written. Names may contain letters, digits, "_",
// "." and "-". A byte order mark at the start of the file is ignored.
//
// Unlike a plain godotenv.Read, every line is validated before it is parsed:
// a line without "=" or with an invalid variable name makes the whole file
// invalid. The returned *MalformedError names the file and the line number
// but never includes the line content, which may hold a secret.
//
// Basic usage:
//
//	vals, err := envfile.Read(".env")
//	switch {
//	case errors.Is(err, fs.ErrNotExist):
//		// no secrets file, nothing to merge
//	case err != nil:
//		return err
//	default:
//		envfile.Merge(environ, vals)
//	}
//
// Merge never overrides keys that are already present in the destination, so
// variables from the real environment take precedence over the file.
package envfile
