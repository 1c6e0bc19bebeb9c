// Package agent implements the conference-assistant agents.
//
// Every agent speaks the same loosely-typed contract: a request map with a
// "type" discriminator goes in, a response map with a "success" flag and
// either a payload or an "error" string comes out. The discovery agent owns
// the scraping pipeline and its cache; the writer agents (proposal,
// scholarship, travel funding) draft text through an llm.Client.
package agent
