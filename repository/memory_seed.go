package repository

import (
	"time"

	"fleetlink/models"
)

// Seed data for the in-memory store, mirroring the demo dataset the service
// ships with. The memory backend makes the whole API usable with zero
// infrastructure; it is selected with DB_TYPE=memory.

func seedClients() []*models.Client {
	return []*models.Client{
		{
			ID:                "client-1",
			CompanyName:       "ABC Logistics",
			ContactPersonName: "John Doe",
			ContactEmail:      "john@abclogistics.com",
			ContactNumber:     "9876543210",
			Addresses: []models.Address{
				{
					ID:           "addr-1",
					AddressLine1: "123 Main Street",
					City:         "Mumbai",
					State:        "Maharashtra",
					PinCode:      "400001",
					Country:      "India",
					AddressType:  models.AddressOffice,
				},
			},
		},
		{
			ID:                "client-2",
			CompanyName:       "XYZ Transport",
			ContactPersonName: "Jane Smith",
			ContactEmail:      "jane@xyztransport.com",
			ContactNumber:     "8765432109",
			Addresses: []models.Address{
				{
					ID:           "addr-2",
					AddressLine1: "789 Business Park",
					City:         "Bangalore",
					State:        "Karnataka",
					PinCode:      "560001",
					Country:      "India",
					AddressType:  models.AddressOffice,
				},
			},
		},
	}
}

func seedOrders() []*models.Order {
	clients := seedClients()
	truck1 := "truck-1"
	truck3 := "truck-3"
	dist1 := 1400.0
	dist2 := 350.0
	nextDate := "2023-09-30"
	remaining := 3260.0

	return []*models.Order{
		{
			ID:     "order-1",
			Client: *clients[0],
			Transport: models.OrderTransport{
				Status: models.OrderNew,
				Source: models.Address{
					ID: "src-1", AddressLine1: "123 Main Street", City: "Mumbai",
					State: "Maharashtra", PinCode: "400001", Country: "India",
					AddressType: models.AddressTransport,
				},
				Destination: models.Address{
					ID: "dest-1", AddressLine1: "456 Central Avenue", City: "Delhi",
					State: "Delhi", PinCode: "110001", Country: "India",
					AddressType: models.AddressTransport,
				},
				Size:     models.SizeMedium,
				TruckID:  &truck1,
				Distance: &dist1,
			},
			Billing: models.Billing{
				Distance: 1400, RatePerKm: 15, Subtotal: 21000,
				GSTRate: 18, GSTAmount: 3780, TotalAmount: 24780,
			},
			Payment: models.Payment{
				Amount: 24780, PaymentType: models.PaymentComplete,
				PaymentMode: models.PaymentUPI, TransactionID: "UPI-123456",
			},
			DriverID:  "driver-1",
			CreatedAt: time.Date(2023, 8, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 8, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:     "order-2",
			Client: *clients[1],
			Transport: models.OrderTransport{
				Status: models.OrderInTransit,
				Source: models.Address{
					ID: "src-2", AddressLine1: "789 Business Park", City: "Bangalore",
					State: "Karnataka", PinCode: "560001", Country: "India",
					AddressType: models.AddressTransport,
				},
				Destination: models.Address{
					ID: "dest-2", AddressLine1: "101 Industrial Area", City: "Chennai",
					State: "Tamil Nadu", PinCode: "600001", Country: "India",
					AddressType: models.AddressTransport,
				},
				Size:     models.SizeLarge,
				TruckID:  &truck3,
				Distance: &dist2,
			},
			Billing: models.Billing{
				Distance: 350, RatePerKm: 20, Subtotal: 7000,
				GSTRate: 18, GSTAmount: 1260, TotalAmount: 8260,
			},
			Payment: models.Payment{
				Amount: 5000, PaymentType: models.PaymentPartial,
				PaymentMode: models.PaymentCheque, TransactionID: "CHQ-654321",
				NextPaymentDate: &nextDate, RemainingAmount: &remaining,
			},
			DriverID:  "driver-2",
			CreatedAt: time.Date(2023, 8, 20, 14, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 8, 22, 9, 15, 0, 0, time.UTC),
		},
	}
}

func seedVehicles() []*models.Vehicle {
	return []*models.Vehicle{
		{ID: "truck-1", Name: "Tata Ace", Type: models.VehicleTruck, Status: models.VehicleAvailable, Capacity: 750, Location: "Mumbai", TruckNumber: "MH01AB1234"},
		{ID: "truck-2", Name: "Eicher 2055", Type: models.VehicleTruck, Status: models.VehicleAvailable, Capacity: 5000, Location: "Mumbai", TruckNumber: "MH02CD5678"},
		{ID: "truck-3", Name: "Bharat Benz", Type: models.VehicleTruck, Status: models.VehicleInTransit, Capacity: 8000, Location: "Bangalore", TruckNumber: "MH03EF9012"},
		{ID: "van-1", Name: "Delivery Van 1", Type: models.VehicleVan, Status: models.VehicleAvailable, Capacity: 1500, Location: "Delhi", TruckNumber: "DL01VN0001"},
		{ID: "van-2", Name: "Express Delivery", Type: models.VehicleVan, Status: models.VehicleMaintenance, Capacity: 1200, Location: "Chennai", TruckNumber: "TN01VN0002"},
	}
}

func seedDrivers() []*models.Driver {
	return []*models.Driver{
		{ID: "driver-1", Name: "Raj Kumar", Status: models.DriverAvailable, Rating: 4.8, LicensePlate: "MH-1234", VehicleType: models.VehicleTruck, PhoneNumber: "9812345670"},
		{ID: "driver-2", Name: "Sunil Verma", Status: models.DriverOnTrip, Rating: 4.9, LicensePlate: "KA-5678", VehicleType: models.VehicleVan, PhoneNumber: "9823456781"},
		{ID: "driver-3", Name: "Amit Singh", Status: models.DriverAvailable, Rating: 4.7, LicensePlate: "DL-9012", VehicleType: models.VehicleTruck, PhoneNumber: "9834567892"},
		{ID: "driver-4", Name: "Jessica Miller", Status: models.DriverOffDuty, Rating: 4.6, LicensePlate: "TN-3456", VehicleType: models.VehicleTruck, PhoneNumber: "9845678903"},
	}
}

func seedTrips() []*models.Trip {
	return []*models.Trip{
		{
			ID: "trip-1", TransportID: "truck-3", DriverID: "driver-2",
			Origin: "Bangalore", Destination: "Chennai",
			StartTime: time.Date(2023, 11, 1, 8, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2023, 11, 1, 16, 0, 0, 0, time.UTC),
			Status:    models.TripInProgress, Distance: 350,
		},
		{
			ID: "trip-2", TransportID: "truck-1", DriverID: "driver-1",
			Origin: "Mumbai", Destination: "Pune",
			StartTime: time.Date(2023, 11, 2, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2023, 11, 2, 14, 0, 0, 0, time.UTC),
			Status:    models.TripScheduled, Distance: 150,
		},
		{
			ID: "trip-3", TransportID: "van-1", DriverID: "driver-3",
			Origin: "Delhi", Destination: "Jaipur",
			StartTime: time.Date(2023, 10, 28, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2023, 10, 28, 14, 30, 0, 0, time.UTC),
			Status:    models.TripCompleted, Distance: 280,
		},
	}
}
