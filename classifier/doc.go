// Package classifier implements route selection for incoming requests. The
// production ModelClassifier delegates the judgment to a model.Model and
// parses the returned label against the closed route set; the Func adapter
// lets callers plug arbitrary classification logic.
package classifier
