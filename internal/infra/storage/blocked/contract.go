package blocked

import "github.com/m04kA/TherapyBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
