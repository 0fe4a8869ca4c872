// Package metrics records operation counts, durations and result sizes in
// a private Prometheus registry, and samples Go runtime memory for the
// verbose report. The registry can be dumped in the text exposition format
// with WriteTextfile, for node_exporter's textfile collector.
package metrics
