package store_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/config"
	"github.com/webcalc/calculation-service/internal/store"
	"github.com/webcalc/calculation-service/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertCalculationStm   = "INSERT INTO calculations (id, user_id, type, inputs, result) VALUES ('%s', '%s', '%s', '%s', %f);"
	insertCalculationAtStm = "INSERT INTO calculations (id, user_id, type, inputs, result, created_at) VALUES ('%s', '%s', '%s', '%s', %f, '%s');"
)

var _ = Describe("calculation store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		userID uuid.UUID
	)

	BeforeAll(func() {
		cfg, err := config.New()
		Expect(err).To(BeNil())
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		userID = uuid.New()
		tx := gormdb.Exec(fmt.Sprintf(insertUserStm, userID, "calc-owner", "owner@example.com"))
		Expect(tx.Error).To(BeNil())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM calculations;")
		gormdb.Exec("DELETE FROM users;")
	})

	Context("list", func() {
		It("successfully lists all the calculations", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "addition", "[1, 2]", 3.0))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "division", "[10, 2]", 5.0))
			Expect(tx.Error).To(BeNil())

			calculations, err := s.Calculation().List(context.TODO(), store.NewCalculationQueryFilter(), store.NewCalculationQueryOptions())
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(2))
		})

		It("successfully filters by type", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "addition", "[1, 2]", 3.0))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "division", "[10, 2]", 5.0))
			Expect(tx.Error).To(BeNil())

			calculations, err := s.Calculation().List(context.TODO(), store.NewCalculationQueryFilter().ByType("division"), nil)
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(1))
			Expect(calculations[0].Type).To(Equal("division"))
		})

		It("successfully filters by user id", func() {
			otherUser := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, otherUser, "other", "other@example.com"))
			Expect(tx.Error).To(BeNil())

			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "addition", "[1, 2]", 3.0))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), otherUser, "addition", "[4, 4]", 8.0))
			Expect(tx.Error).To(BeNil())

			calculations, err := s.Calculation().List(context.TODO(), store.NewCalculationQueryFilter().ByUserID(otherUser.String()), nil)
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(1))
			Expect(calculations[0].UserID).To(Equal(otherUser))
		})

		It("honors limit and offset", func() {
			for i := 0; i < 5; i++ {
				tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "addition", "[1, 2]", 3.0))
				Expect(tx.Error).To(BeNil())
			}

			calculations, err := s.Calculation().List(context.TODO(), nil, store.NewCalculationQueryOptions().WithLimit(2))
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(2))

			calculations, err = s.Calculation().List(context.TODO(), nil, store.NewCalculationQueryOptions().WithOffset(4))
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(1))
		})

		It("sorts by creation time when requested", func() {
			olderID := uuid.New()
			newerID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationAtStm, newerID, userID, "addition", "[1, 2]", 3.0, "2024-02-01T10:00:00Z"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationAtStm, olderID, userID, "addition", "[4, 4]", 8.0, "2024-01-01T10:00:00Z"))
			Expect(tx.Error).To(BeNil())

			calculations, err := s.Calculation().List(context.TODO(), nil, store.NewCalculationQueryOptions().WithSortOrder(store.SortByCreatedTime))
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(2))
			Expect(calculations[0].ID).To(Equal(olderID))
			Expect(calculations[1].ID).To(Equal(newerID))
		})
	})

	Context("get", func() {
		It("successfully gets a calculation", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, id, userID, "division", "[100, 2, 5]", 10.0))
			Expect(tx.Error).To(BeNil())

			calculation, err := s.Calculation().Get(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(calculation.Type).To(Equal("division"))
			Expect(calculation.Inputs.Data).To(Equal([]float64{100, 2, 5}))
			Expect(*calculation.Result).To(Equal(10.0))
		})

		It("fails to get a calculation -- calculation does not exist", func() {
			_, err := s.Calculation().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("create", func() {
		It("successfully creates a calculation", func() {
			result := 18.5
			calculation, err := s.Calculation().Create(context.TODO(), model.Calculation{
				ID:     uuid.New(),
				UserID: userID,
				Type:   "addition",
				Inputs: model.MakeJSONField([]float64{10, 5, 3.5}),
				Result: &result,
			})
			Expect(err).To(BeNil())
			Expect(calculation.Type).To(Equal("addition"))

			count := 0
			tx := gormdb.Raw("SELECT count(*) FROM calculations;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(1))
		})
	})

	Context("update", func() {
		It("successfully updates inputs and result", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, id, userID, "addition", "[1, 2]", 3.0))
			Expect(tx.Error).To(BeNil())

			result := 49.0
			calculation, err := s.Calculation().Update(context.TODO(), id, []float64{42, 7}, &result)
			Expect(err).To(BeNil())
			Expect(calculation.Inputs.Data).To(Equal([]float64{42, 7}))
			Expect(*calculation.Result).To(Equal(49.0))
			Expect(calculation.Type).To(Equal("addition"))
		})

		It("fails to update a calculation -- calculation does not exist", func() {
			_, err := s.Calculation().Update(context.TODO(), uuid.New(), []float64{1, 2}, nil)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("delete", func() {
		It("successfully deletes a calculation", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, id, userID, "addition", "[1, 2]", 3.0))
			Expect(tx.Error).To(BeNil())

			err := s.Calculation().Delete(context.TODO(), id)
			Expect(err).To(BeNil())

			count := 1
			tx = gormdb.Raw("SELECT count(*) FROM calculations;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("fails to delete a calculation -- calculation does not exist", func() {
			err := s.Calculation().Delete(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("statistics", func() {
		It("counts users and calculations by type", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "addition", "[1, 2]", 3.0))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "addition", "[2, 3]", 5.0))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), userID, "division", "[10, 2]", 5.0))
			Expect(tx.Error).To(BeNil())

			stats, err := s.Statistics(context.TODO())
			Expect(err).To(BeNil())
			Expect(stats.TotalUsers).To(Equal(int64(1)))
			Expect(stats.TotalCalculations).To(Equal(int64(3)))
			Expect(stats.CalculationsByType["addition"]).To(Equal(int64(2)))
			Expect(stats.CalculationsByType["division"]).To(Equal(int64(1)))
		})
	})

	Context("seed", func() {
		It("is idempotent", func() {
			Expect(s.Seed()).To(BeNil())
			Expect(s.Seed()).To(BeNil())

			count := 0
			tx := gormdb.Raw("SELECT count(*) FROM users;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			// seed user plus the one created by BeforeEach
			Expect(count).To(Equal(2))
		})
	})
})
