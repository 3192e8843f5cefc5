/*
Package termdeposit implements the deposit lifecycle. It is the only
module that spans the custody boundaries. Opening a deposit locks the
principal in the vault and records ownership in the deposit book.
Withdrawing releases the principal and pays the earned interest from the
reserve. Early withdrawal forfeits the interest and carves a penalty out
of the principal. Matured deposits can be renewed by their owner under
any active plan, or by anyone under the original terms once the grace
period elapsed.

All custody movements are authorized by a single module condition, see
Authority. The plan registry, the vault, the reserve and the deposit
book must name that address as their orchestrator.
*/
package termdeposit
