package catalog

// FieldMediaURL is the only catalog field these functions own. The records
// themselves (title, author links, ...) are created and maintained by the
// client app.
const FieldMediaURL = "mediaUrl"

// Uploads with the generic octet-stream type are treated as non-media and
// skipped.
const contentTypeOctetStream = "application/octet-stream"

// Options selects the URL resolution strategy.
type Options struct {
	// UseSignedURL switches from long-lived download URLs to short-lived
	// V4 signed URLs.
	UseSignedURL bool
	// Emulator short-circuits to plain public URLs for local development.
	Emulator bool
}
