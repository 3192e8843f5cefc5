/*
Package ledger implements the deposit ownership book. Every term deposit
is represented by a record holding the principal, the plan reference and
rate snapshots taken at opening time. Records are minted and finalized
only by the configured orchestrator, while ownership can be transferred
by the current owner or a previously approved address.
*/
package ledger
