// Package logseq renders calendar units in the conventions of a Logseq graph:
// page names, file names, [[links]], {{embed}} macros and the filters
// property. The outline package stays unaware of all of this.
package logseq
