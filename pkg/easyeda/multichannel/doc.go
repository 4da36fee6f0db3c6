// Package multichannel stamps out positioned, uniquely named copies of an
// EasyEDA channel design into a composite schematic and PCB.
//
// # Overview
//
// A channel is authored once as a schematic plus a PCB. Each channel
// instance places one copy of it:
//  1. Schematic pass: every sheet is deep-copied, component references and
//     net names are renamed for the instance and every component gets a
//     fresh unique id. The renames are recorded in a resolver.
//  2. PCB pass: every shape is shifted by the instance offset, footprints
//     take the renamed references and the new unique ids from the resolver,
//     copper takes the renamed nets and every unique id gets a channel suffix.
//
// The PCB pass of an instance only starts once its schematic pass is
// complete. Instances share nothing, so Merge may run them concurrently; the
// copies are still appended to the output documents in declaration order.
//
// # Usage
//
//	m, err := multichannel.NewMerger(multichannel.Options{
//		Style:  naming.StyleSuffix,
//		Logger: logger,
//	})
//	report, err := m.Merge(ctx, mainSch, mainPCB, []multichannel.Source{{
//		Name:      "amp",
//		Schematic: chSch,
//		PCB:       chPCB,
//		Instances: []multichannel.Instance{{ID: "1"}, {ID: "2", X: 1000}},
//	}})
//
// # Diagnostics
//
// Problems with individual shapes (unknown types, missing reference text,
// unmatched components or nets) never abort a merge. They are logged and
// returned as Diagnostics in each instance Result, and the shape is left as
// intact as possible.
package multichannel
