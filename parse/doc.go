// Package parse reads site networks from text and produces a core.Graph.
//
// Two line-oriented forms are accepted, and may be mixed in one input:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	BB 13 CC,AA
//
// The compact form is "ID VALUE [NEIGHBOR,NEIGHBOR,...]". Blank lines and
// lines starting with '#' are ignored. Tunnels are mirrored, since
// distances downstream are symmetric; WithStrict instead rejects any tunnel
// listed from one end only.
//
// YAML decodes a document of the form
//
//	sites:
//	  - id: AA
//	    value: 0
//	    neighbors: [DD, II, BB]
//
// and File picks YAML for .yaml/.yml paths and the line format otherwise.
//
// Every syntax fault is a *MalformedInputError carrying the 1-based line
// number and the offending text; it matches ErrMalformedInput and also
// unwraps to the underlying core error (duplicate site, negative value,
// unknown neighbor) when there is one.
package parse
