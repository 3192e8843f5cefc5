/*
Package reserve implements the interest pool that funds all deposit
interest payouts. The pool is funded and drained by its administrator,
paid out only by the configured orchestrator, and it forwards early
withdrawal penalties to a configured fee receiver.
*/
package reserve
