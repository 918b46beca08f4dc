// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) CountActiveByPatient(ctx context.Context, patientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"patientId": patientID,
		"status":    bson.M{"$in": models.ActiveStatuses},
	}
	return r.coll.CountDocuments(ctx, filter)
}

func (r *mongoAppointmentRepo) ExistsActiveSlot(ctx context.Context, doctorID, date, slotTime string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"time":     slotTime,
		"status":   bson.M{"$in": models.ActiveStatuses},
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListActiveByDoctorBetween returns the doctor's active appointments with
// fromDate <= date < toDate. Dates are "YYYY-MM-DD" strings, so the range
// compares lexicographically.
func (r *mongoAppointmentRepo) ListActiveByDoctorBetween(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": fromDate, "$lt": toDate},
		"status":   bson.M{"$in": models.ActiveStatuses},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"patientId": patientID})
}

func (r *mongoAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"doctorId": doctorID})
}

func (r *mongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
