/*
Package plan implements the registry of term deposit offers. Each plan
fixes a lock duration and prices it with an interest rate and an early
withdrawal penalty rate. Deposits snapshot the rates at opening, so
editing a plan never changes terms already granted.
*/
package plan
