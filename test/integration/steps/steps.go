//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/freight-manager/backend/config"
	"github.com/freight-manager/backend/internal/domain/entity"
	"github.com/freight-manager/backend/internal/infra/dependency"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
	"github.com/freight-manager/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testPassword  = "SecurePass123!"
	adminEmail    = "admin@transportes.com"
)

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	accessToken string

	freights map[string]uuid.UUID
	vehicles map[string]uuid.UUID
	drivers  map[string]uuid.UUID
	brokers  map[string]uuid.UUID
	lastID   uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testDB         *mock.Db
	testServerPort int
	injector       *dependency.Injector
)

var placeholderPattern = regexp.MustCompile(`\{\{(freight|vehicle|driver|broker):([^}]+)\}\}`)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db:     mock.NewDb(),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Account steps
	ctx.Given(`^I am logged in as an admin$`, test.iAmLoggedInAsAnAdmin)
	ctx.Given(`^I am logged in as the driver "([^"]*)"$`, test.iAmLoggedInAsTheDriver)

	// Fleet steps
	ctx.Given(`^a vehicle "([^"]*)" exists$`, test.aVehicleExists)
	ctx.Given(`^a driver "([^"]*)" exists$`, test.aDriverExists)
	ctx.Given(`^a broker "([^"]*)" exists with email "([^"]*)"$`, test.aBrokerExistsWithEmail)

	// Freight and ledger steps
	ctx.Given(`^a freight "([^"]*)" exists with weights "([^"]*)" at price (\d+)$`, test.aFreightExists)
	ctx.Given(`^the freight "([^"]*)" uses the vehicle "([^"]*)"$`, test.theFreightUsesTheVehicle)
	ctx.Given(`^the freight "([^"]*)" is driven by "([^"]*)"$`, test.theFreightIsDrivenBy)
	ctx.Given(`^the freight "([^"]*)" is brokered by "([^"]*)"$`, test.theFreightIsBrokeredBy)
	ctx.Given(`^an income of (\d+) exists for the freight "([^"]*)"$`, test.anIncomeExistsForTheFreight)
	ctx.Given(`^a general income of (\d+) exists$`, test.aGeneralIncomeExists)
	ctx.Given(`^an expense of (\d+) exists for the freight "([^"]*)"$`, test.anExpenseExistsForTheFreight)
	ctx.Given(`^an expense of (\d+) exists for the vehicle "([^"]*)"$`, test.anExpenseExistsForTheVehicle)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.freights = map[string]uuid.UUID{}
	t.vehicles = map[string]uuid.UUID{}
	t.drivers = map[string]uuid.UUID{}
	t.brokers = map[string]uuid.UUID{}
	t.lastID = uuid.Nil

	if t.db != nil {
		if err := t.db.ClearDB(); err != nil {
			return err
		}
	}
	if err := mock.ClearRedis(context.Background(), mock.NewRedis()); err != nil {
		return err
	}
	if injector != nil {
		return injector.Seed(context.Background())
	}
	return nil
}

func (t *testContext) startServer() error {
	var initErr error

	serverInit.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Email.WorkerEnabled = false
		cfg.AI.GeminiAPIKey = ""
		cfg.Auth.BcryptCost = bcrypt.MinCost
		cfg.Seed = config.SeedConfig{}

		inj, err := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
		if err != nil {
			initErr = err
			return
		}
		injector = inj

		if err := injector.Seed(context.Background()); err != nil {
			initErr = err
			return
		}

		engine := injector.Router.Setup(cfg.Server.Environment)
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}
		go func() {
			_ = server.ListenAndServe()
		}()
	})
	if initErr != nil {
		return initErr
	}

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("server did not become ready")
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) createUser(email string, role entity.UserRole, driverID *uuid.UUID) error {
	user := entity.NewUser(email, "Usuário de teste", hashPassword(testPassword), role, driverID)
	return t.db.DbConn.Create(model.FromEntity(user)).Error
}

// login signs in through the public endpoint and keeps the access token for later requests.
func (t *testContext) login(email string) error {
	t.accessToken = ""
	payload := fmt.Sprintf(`{"email": %q, "password": %q}`, email, testPassword)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(payload)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	token, ok := getFieldValue(t.response.body, "access_token").(string)
	if !ok || token == "" {
		return fmt.Errorf("login response has no access token: %v", t.response.body)
	}
	t.accessToken = token
	t.response = nil
	return nil
}

func (t *testContext) iAmLoggedInAsAnAdmin() error {
	if err := t.createUser(adminEmail, entity.UserRoleAdmin, nil); err != nil {
		return err
	}
	return t.login(adminEmail)
}

func (t *testContext) iAmLoggedInAsTheDriver(name string) error {
	driverID, ok := t.drivers[name]
	if !ok {
		if err := t.aDriverExists(name); err != nil {
			return err
		}
		driverID = t.drivers[name]
	}

	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@transportes.com"
	if err := t.createUser(email, entity.UserRoleDriver, &driverID); err != nil {
		return err
	}
	return t.login(email)
}

func (t *testContext) aVehicleExists(plate string) error {
	vehicle := entity.NewVehicle(plate, "Scania R450", nil)
	t.vehicles[plate] = vehicle.ID
	return t.db.DbConn.Create(model.VehicleFromEntity(vehicle)).Error
}

func (t *testContext) aDriverExists(name string) error {
	driver := entity.NewDriver(name, "", "")
	t.drivers[name] = driver.ID
	return t.db.DbConn.Create(model.DriverFromEntity(driver)).Error
}

func (t *testContext) aBrokerExistsWithEmail(name, email string) error {
	broker := entity.NewBroker(name, email, "")
	t.brokers[name] = broker.ID
	return t.db.DbConn.Create(model.BrokerFromEntity(broker)).Error
}

func (t *testContext) aFreightExists(name, weights string, pricePerTon int) error {
	var parsed []decimal.Decimal
	for _, w := range strings.Split(weights, ",") {
		d, err := decimal.NewFromString(strings.TrimSpace(w))
		if err != nil {
			return fmt.Errorf("invalid weight %q: %w", w, err)
		}
		parsed = append(parsed, d)
	}

	freight := entity.NewFreight(name, "Sorriso", "Santos", nil, parsed, decimal.NewFromInt(int64(pricePerTon)), nil, nil, nil)
	t.freights[name] = freight.ID
	return t.db.DbConn.Create(model.FreightFromEntity(freight)).Error
}

func (t *testContext) updateFreightColumn(freightName, column string, value uuid.UUID) error {
	freightID, ok := t.freights[freightName]
	if !ok {
		return fmt.Errorf("freight %q was not created in this scenario", freightName)
	}
	return t.db.DbConn.Model(&model.FreightModel{}).Where("id = ?", freightID).Update(column, value).Error
}

func (t *testContext) theFreightUsesTheVehicle(freightName, plate string) error {
	vehicleID, ok := t.vehicles[plate]
	if !ok {
		return fmt.Errorf("vehicle %q was not created in this scenario", plate)
	}
	return t.updateFreightColumn(freightName, "vehicle_id", vehicleID)
}

func (t *testContext) theFreightIsDrivenBy(freightName, driverName string) error {
	driverID, ok := t.drivers[driverName]
	if !ok {
		return fmt.Errorf("driver %q was not created in this scenario", driverName)
	}
	return t.updateFreightColumn(freightName, "driver_id", driverID)
}

func (t *testContext) theFreightIsBrokeredBy(freightName, brokerName string) error {
	brokerID, ok := t.brokers[brokerName]
	if !ok {
		return fmt.Errorf("broker %q was not created in this scenario", brokerName)
	}
	return t.updateFreightColumn(freightName, "broker_id", brokerID)
}

func (t *testContext) anIncomeExistsForTheFreight(amount int, freightName string) error {
	freightID, ok := t.freights[freightName]
	if !ok {
		return fmt.Errorf("freight %q was not created in this scenario", freightName)
	}
	income := entity.NewIncome("Adiantamento", "", decimal.NewFromInt(int64(amount)), "Adiantamento", &freightID)
	return t.db.DbConn.Omit("Freight").Create(model.IncomeFromEntity(income)).Error
}

func (t *testContext) aGeneralIncomeExists(amount int) error {
	income := entity.NewIncome("Venda de sucata", "", decimal.NewFromInt(int64(amount)), "Outros", nil)
	return t.db.DbConn.Omit("Freight").Create(model.IncomeFromEntity(income)).Error
}

func (t *testContext) anExpenseExistsForTheFreight(amount int, freightName string) error {
	freightID, ok := t.freights[freightName]
	if !ok {
		return fmt.Errorf("freight %q was not created in this scenario", freightName)
	}
	expense := entity.NewExpense("Diesel", "", "Combustível", decimal.NewFromInt(int64(amount)), nil, nil, &freightID, "", nil, "")
	return t.db.DbConn.Create(model.ExpenseFromEntity(expense)).Error
}

func (t *testContext) anExpenseExistsForTheVehicle(amount int, plate string) error {
	vehicleID, ok := t.vehicles[plate]
	if !ok {
		return fmt.Errorf("vehicle %q was not created in this scenario", plate)
	}
	expense := entity.NewExpense("Pneus", "", "Pneus", decimal.NewFromInt(int64(amount)), &vehicleID, nil, nil, "", nil, "")
	return t.db.DbConn.Create(model.ExpenseFromEntity(expense)).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders swaps {{freight:Name}} style references and {{last_id}} for the stored IDs.
func (t *testContext) replacePlaceholders(content string) string {
	content = placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := placeholderPattern.FindStringSubmatch(match)
		var ids map[string]uuid.UUID
		switch parts[1] {
		case "freight":
			ids = t.freights
		case "vehicle":
			ids = t.vehicles
		case "driver":
			ids = t.drivers
		case "broker":
			ids = t.brokers
		}
		if id, ok := ids[parts[2]]; ok {
			return id.String()
		}
		return match
	})
	return strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}
	return nil
}

func (t *testContext) responseObject() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.responseObject()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(field string, quantity int) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items in '%s', got %d", quantity, field, len(items))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	count, err := t.db.Count(table, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
