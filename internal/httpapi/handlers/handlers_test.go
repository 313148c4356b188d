package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/redhat-data-and-ai/bookroster/internal/httpapi/handlers"
	"github.com/redhat-data-and-ai/bookroster/pkg/cache/inmemory"
	"github.com/redhat-data-and-ai/bookroster/pkg/config"
	"github.com/redhat-data-and-ai/bookroster/pkg/store"
	"github.com/redhat-data-and-ai/bookroster/pkg/store/mocks"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

func newRouter(dataStore *store.Store) *gin.Engine {
	cfg := &config.AppConfig{App: config.App{Name: "bookroster"}}
	h := handlers.NewHandlers(cfg, dataStore)

	router := gin.New()
	router.GET("/healthz", h.Healthz)
	h.RegisterRoutes(router.Group("/io"))
	return router
}

func newStore() *store.Store {
	c, err := inmemory.NewCache(nil)
	Expect(err).NotTo(HaveOccurred())
	return store.New(c)
}

func do(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createdID(rec *httptest.ResponseRecorder) int64 {
	Expect(rec.Code).To(Equal(http.StatusCreated), rec.Body.String())
	var resp handlers.CreatedResponse
	Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
	return resp.ID
}

var acme = map[string]interface{}{
	"name":      "Acme",
	"address":   "1 Road Runner Way",
	"email":     "contact@acme.io",
	"comp_type": "SRL",
}

func employee(companyID int64, email string) map[string]interface{} {
	return map[string]interface{}{
		"first_name":   "Wile",
		"last_name":    "Coyote",
		"email":        email,
		"phone_number": "0700000000",
		"id_comp":      companyID,
	}
}

var _ = Describe("Handlers", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = newRouter(newStore())
	})

	Describe("health", func() {
		It("reports the store as reachable", func() {
			rec := do(router, http.MethodGet, "/healthz", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"status":"running"`))
		})
	})

	Describe("companies", func() {
		It("creates, reads, updates and deletes a company", func() {
			id := createdID(do(router, http.MethodPost, "/io/company", acme))
			Expect(id).To(Equal(int64(1)))

			rec := do(router, http.MethodGet, fmt.Sprintf("/io/company/%d", id), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var company types.Company
			Expect(json.Unmarshal(rec.Body.Bytes(), &company)).To(Succeed())
			Expect(company.Name).To(Equal("Acme"))
			Expect(company.ID).To(Equal(id))

			rec = do(router, http.MethodPut, fmt.Sprintf("/io/company/%d", id), map[string]string{"address": "2 Mesa Drive"})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(json.Unmarshal(rec.Body.Bytes(), &company)).To(Succeed())
			Expect(company.Address).To(Equal("2 Mesa Drive"))
			Expect(company.Email).To(Equal("contact@acme.io"))

			rec = do(router, http.MethodDelete, fmt.Sprintf("/io/company/%d", id), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do(router, http.MethodGet, fmt.Sprintf("/io/company/%d", id), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a duplicate name with 409", func() {
			createdID(do(router, http.MethodPost, "/io/company", acme))
			rec := do(router, http.MethodPost, "/io/company", map[string]string{"name": "Acme", "email": "other@acme.io"})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("returns an empty array when there are no companies", func() {
			rec := do(router, http.MethodGet, "/io/company", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(Equal("[]"))
		})

		DescribeTable("malformed requests",
			func(method, path string, body interface{}) {
				rec := do(router, method, path, body)
				Expect(rec.Code).To(Equal(http.StatusBadRequest), rec.Body.String())
			},
			Entry("invalid json", http.MethodPost, "/io/company", "{"),
			Entry("missing email", http.MethodPost, "/io/company", map[string]string{"name": "Acme"}),
			Entry("non numeric id", http.MethodGet, "/io/company/abc", nil),
			Entry("zero id", http.MethodDelete, "/io/company/0", nil),
			Entry("wrong field type", http.MethodPut, "/io/company/1", map[string]int{"name": 5}),
		)
	})

	Describe("employees", func() {
		It("returns 404 when the company does not exist", func() {
			rec := do(router, http.MethodPost, "/io/employee", employee(42, "wile@acme.io"))
			Expect(rec.Code).To(Equal(http.StatusNotFound))

			rec = do(router, http.MethodGet, "/io/employee", nil)
			Expect(rec.Body.String()).To(Equal("[]"))
		})

		It("removes employees together with their company", func() {
			compID := createdID(do(router, http.MethodPost, "/io/company", acme))
			e1 := createdID(do(router, http.MethodPost, "/io/employee", employee(compID, "e1@acme.io")))
			e2 := createdID(do(router, http.MethodPost, "/io/employee", employee(compID, "e2@acme.io")))

			Expect(do(router, http.MethodDelete, fmt.Sprintf("/io/company/%d", compID), nil).Code).To(Equal(http.StatusOK))

			for _, id := range []int64{e1, e2} {
				rec := do(router, http.MethodGet, fmt.Sprintf("/io/employee/%d", id), nil)
				Expect(rec.Code).To(Equal(http.StatusNotFound))
			}
		})

		It("changes only the supplied fields", func() {
			compID := createdID(do(router, http.MethodPost, "/io/company", acme))
			id := createdID(do(router, http.MethodPost, "/io/employee", employee(compID, "wile@acme.io")))

			rec := do(router, http.MethodPut, fmt.Sprintf("/io/employee/%d", id), map[string]string{"phone_number": "x"})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var got types.Employee
			Expect(json.Unmarshal(rec.Body.Bytes(), &got)).To(Succeed())
			Expect(got).To(Equal(types.Employee{
				ID:          id,
				FirstName:   "Wile",
				LastName:    "Coyote",
				Email:       "wile@acme.io",
				PhoneNumber: "x",
				CompanyID:   compID,
			}))
		})
	})

	Describe("reading lists", func() {
		var empID, bookID int64

		BeforeEach(func() {
			compID := createdID(do(router, http.MethodPost, "/io/company", acme))
			empID = createdID(do(router, http.MethodPost, "/io/employee", employee(compID, "wile@acme.io")))
			bookID = createdID(do(router, http.MethodPost, "/io/book", map[string]string{"name": "Dune"}))
		})

		listsOf := func(id int64) types.ReadingLists {
			rec := do(router, http.MethodGet, fmt.Sprintf("/io/employee/%d/books", id), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var lists types.ReadingLists
			Expect(json.Unmarshal(rec.Body.Bytes(), &lists)).To(Succeed())
			return lists
		}

		It("filters out books deleted after they were listed", func() {
			rec := do(router, http.MethodPost, fmt.Sprintf("/io/employee/%d/books/active", empID), handlers.AddBookRequest{BookID: bookID})
			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(listsOf(empID).Active).To(ConsistOf(bookID))

			Expect(do(router, http.MethodDelete, fmt.Sprintf("/io/book/%d", bookID), nil).Code).To(Equal(http.StatusOK))

			lists := listsOf(empID)
			Expect(lists.Active).To(BeEmpty())
			Expect(lists.Wishlist).To(BeEmpty())
			Expect(lists.Listened).To(BeEmpty())
		})

		It("returns a single list keyed by name", func() {
			do(router, http.MethodPost, fmt.Sprintf("/io/employee/%d/books/wishlist", empID), handlers.AddBookRequest{BookID: bookID})

			rec := do(router, http.MethodGet, fmt.Sprintf("/io/employee/%d/books/wishlist", empID), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(fmt.Sprintf(`{"wishlist":[%d]}`, bookID)))
		})

		It("removes a book whether or not it is listed", func() {
			path := fmt.Sprintf("/io/employee/%d/books/listened/%d", empID, bookID)
			Expect(do(router, http.MethodDelete, path, nil).Code).To(Equal(http.StatusOK))
		})

		DescribeTable("error statuses",
			func(method string, pathFn func() string, body func() interface{}, want int) {
				rec := do(router, method, pathFn(), body())
				Expect(rec.Code).To(Equal(want), rec.Body.String())
			},
			Entry("unknown book", http.MethodPost,
				func() string { return fmt.Sprintf("/io/employee/%d/books/active", empID) },
				func() interface{} { return handlers.AddBookRequest{BookID: 999} },
				http.StatusNotFound),
			Entry("unknown employee", http.MethodGet,
				func() string { return "/io/employee/999/books" },
				func() interface{} { return nil },
				http.StatusNotFound),
			Entry("unknown list", http.MethodPost,
				func() string { return fmt.Sprintf("/io/employee/%d/books/favourites", empID) },
				func() interface{} { return handlers.AddBookRequest{BookID: bookID} },
				http.StatusBadRequest),
			Entry("missing book id", http.MethodPost,
				func() string { return fmt.Sprintf("/io/employee/%d/books/active", empID) },
				func() interface{} { return map[string]string{} },
				http.StatusBadRequest),
			Entry("negative book id", http.MethodPost,
				func() string { return fmt.Sprintf("/io/employee/%d/books/active", empID) },
				func() interface{} { return handlers.AddBookRequest{BookID: -3} },
				http.StatusBadRequest),
		)
	})

	Describe("store failures", func() {
		var (
			mockCtrl  *gomock.Controller
			companies *mocks.MockCompanyStoreInterface
			relations *mocks.MockRelationStoreInterface
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			companies = mocks.NewMockCompanyStoreInterface(mockCtrl)
			relations = mocks.NewMockRelationStoreInterface(mockCtrl)

			s := newStore()
			s.Company = companies
			s.Relations = relations
			router = newRouter(s)
		})

		It("maps unexpected errors to 500 without leaking them", func() {
			companies.EXPECT().List(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

			rec := do(router, http.MethodGet, "/io/company", nil)
			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(rec.Body.String()).NotTo(ContainSubstring("connection refused"))
		})

		It("maps wrapped sentinels to their status", func() {
			companies.EXPECT().Delete(gomock.Any(), int64(3)).Return(fmt.Errorf("%w: company 3", store.ErrConflict))
			Expect(do(router, http.MethodDelete, "/io/company/3", nil).Code).To(Equal(http.StatusConflict))
		})

		It("passes the parsed list name and ids to the store", func() {
			relations.EXPECT().RemoveFromList(gomock.Any(), int64(7), types.ListListened, int64(9)).Return(nil)
			Expect(do(router, http.MethodDelete, "/io/employee/7/books/listened/9", nil).Code).To(Equal(http.StatusOK))
		})
	})
})
