// Package notifier posts announcements for newly discovered conference
// events. Twitter is the real channel; the dry-run notifier prints what
// would be posted without touching the network.
package notifier
