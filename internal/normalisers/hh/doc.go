// Package hh provides the normaliser for HeadHunter (hh.ru) vacancy records.
//
// A vacancy item from the /vacancies search endpoint is reduced to the five
// fields of domain.Listing. Missing fields fall back to sentinels and the
// salary object is collapsed into a single value:
//
//   - null or absent salary: 0
//   - bare number: the number, unrounded
//   - {from, to}: their mean rounded to 2 decimals
//   - {from} or {to}: that bound rounded to 2 decimals
package hh
