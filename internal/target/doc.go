/*
Package target models a sparse selection of chains, residues and atoms within a
molecular structure, in the nested shape the viewer uses for selection, hover,
focus and measurement payloads.

A Target owns its Chains, a Chain owns its Residues and a Residue owns its
Atoms. Every entity reports a derived Valid flag. Lookups that miss return a
zero-value sentinel whose Valid is false rather than an error; callers check
Valid before using the result. Calling a Find method on an invalid receiver
returns ErrInvalidReceiver.

Coordinates are rounded to 6 decimal places when an atom is constructed, so a
Target survives a JSON round trip unchanged.
*/
package target
