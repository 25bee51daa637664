// Package pipeline implements the text stages of print document assembly.
//
// Every stage works on plain strings with first-occurrence substring search:
//   - Body extraction between the opening body tag and </body>
//   - Removal of the legacy web cover block that follows a marker comment
//   - Cover image encoding as a base64 data URI
//   - Cover page rendering from an HTML template
//   - Document shell assembly (head, embedded styles, cover, body)
//
// A missing marker never fails a stage; the content passes through unchanged.
// PDF rendering is handled separately by the root printbook package.
package pipeline
