// Package services implements the driving ports on top of the driven ones:
// searching the listing source, normalising what it returns and keeping
// the results in the listing store.
package services
