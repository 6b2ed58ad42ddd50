// Package prompt fills a decorated form from the terminal. Each field kind
// maps onto a survey prompt; the decorated placeholder doubles as help text.
package prompt
