package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LibraryCount is the number of imported reads for one library/role pair.
type LibraryCount struct {
	Library string
	ReadNum int
	Count   int64
}

// ExistenceCount buckets read-1 documents by their barcode_matches value:
// 0 means no whitelist match, 1 a unique match, and 2 or more an
// ambiguous barcode left uncorrected.
type ExistenceCount struct {
	Matches int
	Count   int64
}

// BarcodeCount is the number of reads assigned to one cell barcode.
type BarcodeCount struct {
	Barcode string
	Count   int64
}

// Stats aggregates an imported read collection.
type Stats struct {
	Total       int64
	Libraries   []LibraryCount
	Existence   []ExistenceCount
	TopBarcodes []BarcodeCount
}

// Stats runs the aggregation pipelines over the collection. topN limits
// the per-barcode ranking.
func (s *Mongo) Stats(topN int) (Stats, error) {
	ctx := context.Background()
	var ans Stats
	var err error

	ans.Total, err = s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return ans, fmt.Errorf("counting documents: %w", err)
	}

	ans.Libraries, err = s.libraryCounts(ctx)
	if err != nil {
		return ans, err
	}
	ans.Existence, err = s.existenceCounts(ctx)
	if err != nil {
		return ans, err
	}
	ans.TopBarcodes, err = s.topBarcodes(ctx, topN)
	return ans, err
}

func (s *Mongo) libraryCounts(ctx context.Context) ([]LibraryCount, error) {
	cur, err := s.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "library", Value: "$library"},
				{Key: "read_num", Value: "$read_num"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.library", Value: 1},
			{Key: "_id.read_num", Value: 1},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregating library counts: %w", err)
	}

	var rows []struct {
		Id struct {
			Library string `bson:"library"`
			ReadNum int    `bson:"read_num"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err = cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decoding library counts: %w", err)
	}

	ans := make([]LibraryCount, len(rows))
	for i := range rows {
		ans[i] = LibraryCount{Library: rows[i].Id.Library, ReadNum: rows[i].Id.ReadNum, Count: rows[i].Count}
	}
	return ans, nil
}

func (s *Mongo) existenceCounts(ctx context.Context) ([]ExistenceCount, error) {
	cur, err := s.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "read_num", Value: 1}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$barcode_matches"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregating barcode existence counts: %w", err)
	}

	var rows []struct {
		Id    int   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err = cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decoding barcode existence counts: %w", err)
	}

	ans := make([]ExistenceCount, len(rows))
	for i := range rows {
		ans[i] = ExistenceCount{Matches: rows[i].Id, Count: rows[i].Count}
	}
	return ans, nil
}

func (s *Mongo) topBarcodes(ctx context.Context, topN int) ([]BarcodeCount, error) {
	cur, err := s.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "barcode_matches", Value: 1}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$barcode"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: topN}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregating top barcodes: %w", err)
	}

	var rows []struct {
		Id    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err = cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decoding top barcodes: %w", err)
	}

	ans := make([]BarcodeCount, len(rows))
	for i := range rows {
		ans[i] = BarcodeCount{Barcode: rows[i].Id, Count: rows[i].Count}
	}
	return ans, nil
}
