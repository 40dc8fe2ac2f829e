// Package render converts field values into styled text cells for display in a
// listing. Rendering never fails: values that can't be resolved (such as an
// owner whose account lookup fails) are rendered as a visible placeholder and
// the cause is reported through an injected logger.
package render
