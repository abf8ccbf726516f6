package app

import (
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/auth"
	"github.com/ipriyanshu25/office.enoylity/internal/employee"
	"github.com/ipriyanshu25/office.enoylity/internal/invoice"
	"github.com/ipriyanshu25/office.enoylity/internal/kpi"
	"github.com/ipriyanshu25/office.enoylity/internal/payslip"
	"github.com/ipriyanshu25/office.enoylity/internal/settings"
	"github.com/ipriyanshu25/office.enoylity/internal/subadmin"
)

// counters and outbox_events are touched with raw SQL, so their DDL lives
// here instead of a gorm model.
const rawTablesDDL = `
CREATE TABLE IF NOT EXISTS counters (
    scope        VARCHAR(40)  NOT NULL,
    counter_type VARCHAR(40)  NOT NULL,
    last_value   BIGINT       NOT NULL DEFAULT 0,
    updated_at   TIMESTAMPTZ  NOT NULL DEFAULT now(),
    PRIMARY KEY (scope, counter_type)
);

CREATE TABLE IF NOT EXISTS outbox_events (
    id             VARCHAR(40)  PRIMARY KEY,
    request_id     VARCHAR(64)  NOT NULL DEFAULT '',
    aggregate_type VARCHAR(40)  NOT NULL,
    aggregate_id   VARCHAR(64)  NOT NULL,
    event_type     VARCHAR(64)  NOT NULL,
    topic          VARCHAR(128) NOT NULL,
    payload        JSONB        NOT NULL,
    status         VARCHAR(16)  NOT NULL DEFAULT 'pending',
    retry_count    INT          NOT NULL DEFAULT 0,
    next_retry_at  TIMESTAMPTZ  NOT NULL DEFAULT now(),
    created_at     TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
    ON outbox_events (status, next_retry_at);
`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&auth.Admin{},
		&subadmin.Subadmin{},
		&employee.Employee{},
		&invoice.Invoice{},
		&invoice.InvoiceItem{},
		&payslip.Payslip{},
		&kpi.KPI{},
		&kpi.Punch{},
		&settings.InvoiceSettings{},
		&settings.SalarySettings{},
	); err != nil {
		return err
	}

	return db.Exec(rawTablesDDL).Error
}
