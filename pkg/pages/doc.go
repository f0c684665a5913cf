// Package pages sequences the pages of a notebook.
//
// A [Page] has an opaque [ID] assigned once at creation, a user title, and two
// derived fields: its display Number and binding Side. The derived fields are
// never set directly; [Renumber] recomputes them from the page's position in
// the collection and a numbering [Policy]:
//
//	number(i) = i      if StartAtZero
//	          = i + 1  otherwise
//	side(i)   = FirstSide at even i, the opposite side at odd i
//
// Every collection edit in this package ([Add], [Remove], [Move], [SetTitle])
// returns a new, renumbered slice and leaves its input untouched, so callers
// can hold collections as immutable snapshots.
//
// There is a single numbering model: a "page zero" is simply the first page of
// a collection numbered with StartAtZero. No page lives outside the sequence.
//
// [Selection] is an independent set of page ids used by the presentation
// layer for highlighting. It has no effect on numbering or geometry.
package pages
