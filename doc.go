// Package printbook assembles a print-ready HTML book from a source HTML
// file, an external stylesheet and a cover image.
//
// # Quick Start
//
//	asm, err := printbook.NewAssembler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer asm.Close()
//
//	result, err := asm.Assemble(ctx, printbook.Input{
//	    HTML:    string(source),
//	    CSS:     string(styles),
//	    CSSName: "medical-textbook-styles.css",
//	    Cover:   coverPNG,
//	    Profile: "enhanced",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("book_print.html", result.HTML, 0o644)
//
// # Assembly
//
// The output is a single self-contained document:
//
//  1. A fixed header: doctype, authoring comments, title and author metadata
//  2. One <style> block holding the stylesheet verbatim followed by the
//     print rules of the selected profile
//  3. A cover page whose image is embedded as a base64 data URI
//  4. The content of the source <body>, with the legacy web cover removed
//
// The body is located by plain substring search, not DOM parsing. When the
// source has no <body> region, only the header and cover are written.
//
// # Print Profiles
//
// A profile is a named set of print CSS overrides. "standard" adds color
// preservation rules; "enhanced" forces exact colors with fallbacks for
// print drivers that drop backgrounds. Custom profiles are loaded from
// styles/<name>.css under the directory given to WithAssetPath.
//
// # PDF
//
// Set Input.RenderPDF to also print the document through headless Chrome.
// The document's @page rules set paper size and margins. The browser starts
// on first use; call Close to release it.
package printbook
