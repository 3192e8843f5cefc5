/*
Package vault implements the custody account all deposited principal is
held on. Funds can be moved only by the configured orchestrator and the
tracked principal total is maintained independently of the account
wallet. The vault holds no deposit logic.
*/
package vault
