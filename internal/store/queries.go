package store

// Topology queries.
const (
	queryListWebsites = `
		SELECT website_id, code
		FROM store_website
		WHERE website_id != 0
		ORDER BY website_id`

	queryListStores = `
		SELECT store_id, website_id, code
		FROM store
		WHERE website_id = $1 AND is_active = TRUE
		ORDER BY store_id`
)

// Cart queries.
const (
	queryGetQuote = `
		SELECT q.entity_id, q.store_id, q.customer_id,
			COALESCE(q.customer_email, ''), COALESCE(q.customer_firstname, ''),
			COALESCE(q.customer_lastname, ''),
			COALESCE(b.email, ''), COALESCE(b.firstname, ''), COALESCE(b.lastname, '')
		FROM quote q
		LEFT JOIN quote_address b
			ON b.quote_id = q.entity_id AND b.address_type = 'billing'
		WHERE q.entity_id = $1 AND q.store_id = $2`

	queryListQuoteItems = `
		SELECT sku, COALESCE(name, ''), COALESCE(price, 0)
		FROM quote_item
		WHERE quote_id = $1 AND parent_item_id IS NULL
		ORDER BY item_id`

	queryGetCustomer = `
		SELECT entity_id, COALESCE(email, ''), COALESCE(firstname, ''),
			COALESCE(lastname, ''), COALESCE(external_id, '')
		FROM customer_entity
		WHERE entity_id = $1`

	// Store-level rows override the default (store 0) row.
	queryGetProduct = `
		SELECT sku, COALESCE(brand, ''), COALESCE(detail_url, ''), COALESCE(image_url, ''),
			ARRAY[COALESCE(additional_image_1, ''), COALESCE(additional_image_2, ''),
				COALESCE(additional_image_3, ''), COALESCE(additional_image_4, ''),
				COALESCE(additional_image_5, '')],
			COALESCE(short_description, ''), special_price,
			exclude_cart_abandonment_alert
		FROM catalog_product
		WHERE sku = @sku AND store_id IN (0, @store_id)
		ORDER BY store_id DESC
		LIMIT 1`
)

// Notification state queries.
const (
	queryGetAbandonmentRecord = `
		SELECT entity_id, quote_id, event_trigger_count
		FROM cart_abandonment_info
		WHERE quote_id = $1`

	queryInsertAbandonmentRecord = `
		INSERT INTO cart_abandonment_info (quote_id, event_trigger_count)
		VALUES (@quote_id, @count)
		ON CONFLICT (quote_id) DO UPDATE SET
			event_trigger_count = EXCLUDED.event_trigger_count,
			updated_at          = now()
		RETURNING entity_id, quote_id, event_trigger_count`

	queryUpdateAbandonmentRecord = `
		UPDATE cart_abandonment_info SET
			event_trigger_count = @count,
			updated_at          = now()
		WHERE entity_id = @entity_id
		RETURNING entity_id, quote_id, event_trigger_count`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
