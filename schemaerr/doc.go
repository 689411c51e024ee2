// Package schemaerr defines the two failure tiers of schemaguard.
//
// # Records
//
// A Record is an ordinary validation failure: the value does not satisfy a
// constraint. Records are appended to a Sink and validation continues:
//
//	sink := &schemaerr.Collector{}
//	sink.Add(schemaerr.Record{Path: "/age", Message: "String value found, but an integer is required", Code: schemaerr.CodeType})
//
// # Faults
//
// A Fault is an internal consistency failure, such as an atom outside the
// vocabulary or a catalog without a wording. It is returned as an error and
// aborts the current check. It is never turned into a Record.
//
//	if errors.Is(err, schemaerr.ErrUnknownAtom) {
//	    // the schema names a type the validator does not know
//	}
//
//	var fault *schemaerr.Fault
//	if errors.As(err, &fault) {
//	    fmt.Println(fault.Code, fault.Atom)
//	}
package schemaerr
