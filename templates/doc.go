// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package templates renders the embedded HTML pages.

	pages, err := templates.New()
	err = pages.Render(w, http.StatusOK, templates.PageDetail, map[string]interface{}{
		"question":      q,
		"choices":       choices,
		"error_message": "You didn't select a choice.",
	})

Context keys per page:

  - index.html: latest_question_list, now
  - detail.html: question, choices, error_message (optional)
  - results.html: question, choices, total_votes

Helpers available in templates:

	{{ naturaltime .PubDate }}  → "3 hours ago"
	{{ plural .Votes "vote" }}  → "1 vote", "2 votes"
*/
package templates
