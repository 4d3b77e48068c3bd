// Package postgres implements the store interfaces on PostgreSQL.
// All implementations accept a store.DBTX so they run equally on a pooled
// connection or inside a caller-managed transaction.
package postgres
