// Package export renders computed plans for downstream consumers.
// It only reads PlanResult fields and performs no recomputation.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"truckload-plan-service/internal/domain"
	"truckload-plan-service/internal/platform/obs"

	"github.com/jszwec/csvutil"
)

// tripRow is the flat CSV projection of one planned trip. The csv tags define
// the header line; csvutil maps struct fields to columns by these tags.
type tripRow struct {
	RequestID      int     `csv:"request_id"`
	TripSeq        int     `csv:"trip_seq"`
	VehicleID      int     `csv:"vehicle_id"`
	Shipper        string  `csv:"shipper"`
	Receiver       string  `csv:"receiver"`
	LoadTons       float64 `csv:"load_tons"`
	TotalKm        float64 `csv:"total_km"`
	LoadedKm       float64 `csv:"loaded_km"`
	StartHour      float64 `csv:"start_hour"`
	ArriveShipper  float64 `csv:"arrive_shipper_hour"`
	DepartShipper  float64 `csv:"depart_shipper_hour"`
	ArriveReceiver float64 `csv:"arrive_receiver_hour"`
	DepartReceiver float64 `csv:"depart_receiver_hour"`
	EndHour        float64 `csv:"end_hour"`
	Warnings       string  `csv:"warnings"`
}

// WriteTripsCSV writes the plan's trip table to w, one row per trip in
// creation order, with a header line first. Multiple warnings on a trip are
// joined with "; " to keep the row rectangular.
func WriteTripsCSV(ctx context.Context, w io.Writer, plan domain.PlanResult) (err error) {
	defer obs.Time(ctx, "export.WriteTripsCSV")(&err)

	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	for _, t := range plan.Trips {
		row := tripRow{
			RequestID:      t.RequestID,
			TripSeq:        t.Sequence,
			VehicleID:      t.VehicleID,
			Shipper:        t.Shipper.Code,
			Receiver:       t.Receiver.Code,
			LoadTons:       t.Load,
			TotalKm:        t.TotalDistance,
			LoadedKm:       t.DistToReceiver,
			StartHour:      t.Schedule.Start,
			ArriveShipper:  t.Schedule.ArriveShipper,
			DepartShipper:  t.Schedule.DepartShipper,
			ArriveReceiver: t.Schedule.ArriveReceiver,
			DepartReceiver: t.Schedule.DepartReceiver,
			EndHour:        t.Schedule.End,
			Warnings:       strings.Join(t.Warnings, "; "),
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("export trips csv: encode request_id=%d trip_seq=%d: %w", t.RequestID, t.Sequence, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export trips csv: flush: %w", err)
	}

	return nil
}
