// Package muald adapts an Aldebaran-format labelled transition system
// and a μ-calculus formula into the core's fixpoint-equation input,
// per spec.md §4.7. States are basis elements; each η-binder (mu/nu)
// in the formula becomes one equation; the modal operators compile to
// diamond_a/box_a/tt/ff moves, one operator per distinct modality
// (label, "true" wildcard, or negated "!a" label) and constant that
// occurs in the formula. LTS labels the formula does not mention get
// no operator.
package muald
