// Package toc extracts a structured table of contents from the front
// pages of magazine PDFs, for three editorial layouts: the New Yorker,
// the Atlantic, and Harper's Magazine.
//
// # Pipeline
//
// Processing is a strict forward transformation per document:
//
//	PDF path → page text → brand → entries → rendered report
//
//   - Extractor obtains page text via pdftotext's layout mode, reading
//     the native text layer directly when layout extraction yields
//     nothing, and falling back to OCR (pdftoppm + tesseract) for the
//     leading pages when native text is too sparse.
//   - Detect classifies the document with an explicit priority chain:
//     explicit override, filename tokens, then page-one masthead
//     markers, terminating in Unknown rather than guessing.
//   - One Parser per brand classifies lines and runs an ordered table of
//     tolerant patterns under a current-section cursor. Unmatched
//     candidate lines are counted and dropped: precision over recall.
//   - Render emits a plain-text report or the ordered entry list as
//     JSON. Rendering is deterministic.
//
// No component holds state across documents, so a batch of PDFs is
// embarrassingly parallel at document granularity.
package toc
